package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Querulantenkind/rnm/pkg/types"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want types.RenameMode
		ok   bool
	}{
		{"search", types.ModeSearchReplace, true},
		{"s", types.ModeSearchReplace, true},
		{"UPPER", types.ModeUppercase, true},
		{"lowercase", types.ModeLowercase, true},
		{"title", types.ModeTitleCase, true},
		{"regex", types.ModeRegex, true},
		{"r", types.ModeRegex, true},
		{"num", types.ModeNumbering, true},
		{"pre", types.ModePrefix, true},
		{"suf", types.ModeSuffix, true},
		{"date", types.ModeDateInsert, true},
		{"invalid", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseMode(tc.in)
		assert.Equal(t, tc.ok, ok, "ParseMode(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseMode(%q)", tc.in)
	}
}

func TestParseDatePosition(t *testing.T) {
	cases := []struct {
		in   string
		want types.DatePosition
		ok   bool
	}{
		{"prefix", types.DatePrefix, true},
		{"SUFFIX", types.DateSuffix, true},
		{"replace", types.DateReplace, true},
		{"p", types.DatePrefix, true},
		{"invalid", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseDatePosition(tc.in)
		assert.Equal(t, tc.ok, ok, "ParseDatePosition(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseDatePosition(%q)", tc.in)
	}
}

func TestParseSortOrder(t *testing.T) {
	cases := []struct {
		in   string
		want types.SortOrder
		ok   bool
	}{
		{"name", types.SortByName, true},
		{"size", types.SortBySize, true},
		{"mtime", types.SortByModified, true},
		{"modified", types.SortByModified, true},
		{"bogus", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseSortOrder(tc.in)
		assert.Equal(t, tc.ok, ok, "ParseSortOrder(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseSortOrder(%q)", tc.in)
	}
}

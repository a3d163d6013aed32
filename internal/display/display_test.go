package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Querulantenkind/rnm/pkg/types"
)

func TestWritePreviews(t *testing.T) {
	var b strings.Builder
	WritePreviews(&b, []types.RenamePreview{
		{OriginalName: "a.txt", NewName: "b.txt", WillChange: true},
		{OriginalName: "same.txt", NewName: "same.txt"},
	})

	out := b.String()
	assert.Contains(t, out, "a.txt -> b.txt")
	assert.Contains(t, out, "same.txt (unchanged)")
}

func TestDescribeMode(t *testing.T) {
	opts := types.DefaultOptions()
	opts.Search = "old"
	opts.Replace = "new"

	assert.Equal(t, "Search/Replace: 'old' -> 'new'", DescribeMode(types.ModeSearchReplace, opts))

	opts.Search = "img_###"
	opts.NumberStart = 5
	opts.NumberStep = 2
	assert.Equal(t, "Numbering: pattern 'img_###' from 5 step 2", DescribeMode(types.ModeNumbering, opts))

	opts.Search = "old_"
	opts.Action = types.AffixRemove
	assert.Equal(t, "Prefix: 'old_' (remove)", DescribeMode(types.ModePrefix, opts))

	opts.DatePosition = types.DateSuffix
	assert.Equal(t, "Date Insert: Suffix (YYYYMMDD)", DescribeMode(types.ModeDateInsert, opts))

	assert.Equal(t, "Uppercase", DescribeMode(types.ModeUppercase, opts))
}

func TestWriteOperations(t *testing.T) {
	var b strings.Builder
	WriteOperations(&b, []types.RenameOperation{
		{
			Timestamp:   1700000000,
			Directory:   "/photos",
			Entries:     []types.RenameEntry{{OriginalName: "a", NewName: "b"}},
			Description: "Search/Replace: 'a' -> 'b'",
		},
	})

	out := b.String()
	assert.Contains(t, out, "/photos")
	assert.Contains(t, out, "1 file(s)")
	assert.Contains(t, out, "Search/Replace")
}

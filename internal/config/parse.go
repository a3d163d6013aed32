package config

import (
	"strings"

	"github.com/Querulantenkind/rnm/pkg/types"
)

// ParseMode maps a CLI mode token to a rename mode.
func ParseMode(s string) (types.RenameMode, bool) {
	switch strings.ToLower(s) {
	case "search", "searchreplace", "search-replace", "s":
		return types.ModeSearchReplace, true
	case "regex", "r":
		return types.ModeRegex, true
	case "numbering", "number", "num", "n":
		return types.ModeNumbering, true
	case "prefix", "pre":
		return types.ModePrefix, true
	case "suffix", "suf":
		return types.ModeSuffix, true
	case "date", "dateinsert", "date-insert", "d":
		return types.ModeDateInsert, true
	case "upper", "uppercase", "u":
		return types.ModeUppercase, true
	case "lower", "lowercase", "l":
		return types.ModeLowercase, true
	case "title", "titlecase", "t":
		return types.ModeTitleCase, true
	default:
		return "", false
	}
}

// ParseDatePosition maps a CLI token to a date position.
func ParseDatePosition(s string) (types.DatePosition, bool) {
	switch strings.ToLower(s) {
	case "prefix", "pre", "p":
		return types.DatePrefix, true
	case "suffix", "suf", "s":
		return types.DateSuffix, true
	case "replace", "rep", "r":
		return types.DateReplace, true
	default:
		return "", false
	}
}

// ParseSortOrder maps a CLI token to a sort order.
func ParseSortOrder(s string) (types.SortOrder, bool) {
	switch strings.ToLower(s) {
	case "name", "n":
		return types.SortByName, true
	case "size", "s":
		return types.SortBySize, true
	case "modified", "mtime", "m":
		return types.SortByModified, true
	default:
		return "", false
	}
}

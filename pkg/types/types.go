// Package types defines core data structures used across rnm modules.
package types

import (
	"time"
)

// FileEntry represents a filesystem entry at enumeration time.
// It is a snapshot and is not re-validated until execution.
type FileEntry struct {
	// Path is the absolute path to the entry.
	Path string
	// Name is the base filename.
	Name string
	// IsDir indicates a directory. Directories are listed but never renamed.
	IsDir bool
	// Size is the file size in bytes.
	Size int64
	// ModTime is the file modification time. Zero if unknown.
	ModTime time.Time
}

// RenameMode selects the transformation applied to filenames.
type RenameMode string

const (
	ModeSearchReplace RenameMode = "search-replace"
	ModeRegex         RenameMode = "regex"
	ModeNumbering     RenameMode = "numbering"
	ModePrefix        RenameMode = "prefix"
	ModeSuffix        RenameMode = "suffix"
	ModeDateInsert    RenameMode = "date-insert"
	ModeUppercase     RenameMode = "uppercase"
	ModeLowercase     RenameMode = "lowercase"
	ModeTitleCase     RenameMode = "title-case"
)

// DisplayName returns a human-readable name for the mode.
func (m RenameMode) DisplayName() string {
	switch m {
	case ModeSearchReplace:
		return "Search/Replace"
	case ModeRegex:
		return "Regex"
	case ModeNumbering:
		return "Numbering"
	case ModePrefix:
		return "Prefix"
	case ModeSuffix:
		return "Suffix"
	case ModeDateInsert:
		return "Date Insert"
	case ModeUppercase:
		return "Uppercase"
	case ModeLowercase:
		return "Lowercase"
	case ModeTitleCase:
		return "Title Case"
	default:
		return string(m)
	}
}

// UsesSearchReplace reports whether the mode reads the search and
// replace parameters.
func (m RenameMode) UsesSearchReplace() bool {
	switch m {
	case ModeSearchReplace, ModeRegex, ModeNumbering, ModePrefix, ModeSuffix:
		return true
	default:
		return false
	}
}

// AllModes lists every rename mode in cycle order for the TUI.
var AllModes = []RenameMode{
	ModeSearchReplace,
	ModeRegex,
	ModeNumbering,
	ModePrefix,
	ModeSuffix,
	ModeDateInsert,
	ModeUppercase,
	ModeLowercase,
	ModeTitleCase,
}

// AffixAction selects whether a prefix/suffix is added or removed.
type AffixAction string

const (
	AffixAdd    AffixAction = "add"
	AffixRemove AffixAction = "remove"
)

// DatePosition selects where the date stamp is inserted.
type DatePosition string

const (
	DatePrefix  DatePosition = "prefix"
	DateSuffix  DatePosition = "suffix"
	DateReplace DatePosition = "replace"
)

// DisplayName returns a human-readable name for the date position.
func (p DatePosition) DisplayName() string {
	switch p {
	case DatePrefix:
		return "Prefix"
	case DateSuffix:
		return "Suffix"
	case DateReplace:
		return "Replace"
	default:
		return string(p)
	}
}

// SortOrder selects how scanned files are ordered.
type SortOrder string

const (
	SortByName     SortOrder = "name"
	SortBySize     SortOrder = "size"
	SortByModified SortOrder = "modified"
)

// Options carries mode parameters. Only a subset is meaningful per
// mode; irrelevant fields are ignored.
type Options struct {
	// Search is the search string (SearchReplace), regex pattern
	// (Regex), numbering pattern (Numbering), or affix text
	// (Prefix/Suffix).
	Search string
	// Replace is the replacement string for SearchReplace and Regex.
	Replace string
	// Action selects add or remove for Prefix/Suffix modes.
	Action AffixAction
	// NumberStart is the first counter value for Numbering mode.
	NumberStart int
	// NumberStep is the counter increment for Numbering mode.
	NumberStep int
	// DatePosition selects placement for DateInsert mode.
	DatePosition DatePosition
}

// DefaultOptions returns options with the usual counter settings.
func DefaultOptions() Options {
	return Options{
		Action:       AffixAdd,
		NumberStart:  1,
		NumberStep:   1,
		DatePosition: DatePrefix,
	}
}

// RenamePreview describes one proposed rename.
type RenamePreview struct {
	// OriginalName is the current filename.
	OriginalName string
	// NewName is the proposed filename.
	NewName string
	// WillChange is true when NewName differs from OriginalName.
	WillChange bool
	// SourceIndex is the index of the file in the scanned list.
	SourceIndex int
}

// RenameEntry is one applied original -> new mapping in a history
// operation.
type RenameEntry struct {
	OriginalName string `json:"original_name"`
	NewName      string `json:"new_name"`
}

// RenameOperation records a successfully executed batch so it can be
// undone later. Immutable once stored.
type RenameOperation struct {
	// Timestamp is seconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`
	// Directory is the directory the batch ran in.
	Directory string `json:"directory"`
	// Entries holds the renamed subset that was actually applied.
	Entries []RenameEntry `json:"entries"`
	// Description is free text shown in history listings.
	Description string `json:"description"`
}

// Preset is a named, persisted shortcut for mode plus parameters.
type Preset struct {
	Name    string     `yaml:"name" json:"name"`
	Mode    RenameMode `yaml:"mode" json:"mode"`
	Search  string     `yaml:"search" json:"search"`
	Replace string     `yaml:"replace" json:"replace"`
}

// Package scanner enumerates the files of a single directory. The
// listing is a snapshot: entries are not re-validated until a rename
// batch executes.
package scanner

import (
	"cmp"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/Querulantenkind/rnm/pkg/types"
)

// Scanner lists one directory, optionally filtered by a glob
// pattern. Scanning never recurses.
type Scanner struct {
	pattern string
	order   types.SortOrder
}

// New creates a scanner. pattern is a shell glob matched against
// base names; empty means no filter.
func New(pattern string, order types.SortOrder) *Scanner {
	return &Scanner{pattern: pattern, order: order}
}

// Scan lists dir. Hidden dotfiles are skipped. With a glob pattern
// only matching files are returned; without one, directories are
// included (listed first) but are never renamed.
func (s *Scanner) Scan(dir string) ([]types.FileEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []types.FileEntry
	for _, d := range dirEntries {
		name := d.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if s.pattern != "" {
			ok, err := filepath.Match(s.pattern, name)
			if err != nil {
				return nil, err
			}
			if !ok || d.IsDir() {
				continue
			}
		}

		entry := types.FileEntry{
			Path:  filepath.Join(dir, name),
			Name:  name,
			IsDir: d.IsDir(),
		}
		if info, err := d.Info(); err == nil {
			entry.Size = info.Size()
			entry.ModTime = info.ModTime()
		}

		entries = append(entries, entry)
	}

	Sort(entries, s.order)
	return entries, nil
}

// Sort orders entries in place: directories first, then files per
// the sort order.
func Sort(entries []types.FileEntry, order types.SortOrder) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		switch order {
		case types.SortBySize:
			if a.Size != b.Size {
				return a.Size < b.Size
			}
		case types.SortByModified:
			if !a.ModTime.Equal(b.ModTime) {
				return a.ModTime.Before(b.ModTime)
			}
		}
		return naturalCompare(a.Name, b.Name) < 0
	})
}

// SplitGlob splits a CLI path argument into a directory and an
// optional glob pattern. "photos/*.jpg" becomes ("photos", "*.jpg");
// a plain directory path returns an empty pattern.
func SplitGlob(input string) (string, string) {
	if !strings.ContainsAny(input, "*?[") {
		return input, ""
	}

	dir, pattern := filepath.Split(input)
	if dir == "" {
		dir = "."
	} else {
		dir = filepath.Clean(dir)
	}
	return dir, pattern
}

// naturalCompare compares two names case-insensitively with numeric
// runs compared as integers, so "file_2" sorts before "file_10".
func naturalCompare(a, b string) int {
	aLower := strings.ToLower(a)
	bLower := strings.ToLower(b)

	ai, bi := 0, 0
	for ai < len(aLower) && bi < len(bLower) {
		aIsDigit := unicode.IsDigit(rune(aLower[ai]))
		bIsDigit := unicode.IsDigit(rune(bLower[bi]))

		if aIsDigit && bIsDigit {
			aNum, aEnd := extractNumber(aLower, ai)
			bNum, bEnd := extractNumber(bLower, bi)

			if c := cmp.Compare(aNum, bNum); c != 0 {
				return c
			}
			if c := cmp.Compare(aEnd-ai, bEnd-bi); c != 0 {
				return c
			}
			ai = aEnd
			bi = bEnd
			continue
		}

		if aLower[ai] != bLower[bi] {
			return cmp.Compare(aLower[ai], bLower[bi])
		}
		ai++
		bi++
	}
	return cmp.Compare(len(aLower), len(bLower))
}

// extractNumber reads a digit run starting at start, returning its
// value and end position.
func extractNumber(s string, start int) (uint64, int) {
	var num uint64
	i := start
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		num = num*10 + uint64(s[i]-'0')
		i++
	}
	return num, i
}

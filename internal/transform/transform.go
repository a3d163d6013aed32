// Package transform implements the pure filename transformations
// behind every rename mode. A Transformer is built once per batch and
// applied to each filename in turn; Apply never fails.
package transform

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/Querulantenkind/rnm/pkg/types"
)

// ErrInvalidPattern marks a regex pattern that failed to compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// Transformer applies one rename mode to filenames.
type Transformer struct {
	mode types.RenameMode
	opts types.Options
	re   *regexp.Regexp
}

// New builds a Transformer for the given mode. For Regex mode the
// search pattern is compiled here so that Apply stays total; a bad
// pattern is reported to the caller instead of being swallowed.
func New(mode types.RenameMode, opts types.Options) (*Transformer, error) {
	t := &Transformer{mode: mode, opts: opts}

	if mode == types.ModeRegex && opts.Search != "" {
		re, err := regexp.Compile(opts.Search)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
		}
		t.re = re
	}

	return t, nil
}

// Apply transforms a single filename. counter is the current
// Numbering counter value; modTime is the file's modification time
// for DateInsert. Malformed inputs degrade to identity rather than
// failing.
func (t *Transformer) Apply(name string, counter int, modTime time.Time) string {
	switch t.mode {
	case types.ModeSearchReplace:
		if t.opts.Search == "" {
			return name
		}
		return strings.ReplaceAll(name, t.opts.Search, t.opts.Replace)

	case types.ModeRegex:
		if t.re == nil {
			return name
		}
		return t.re.ReplaceAllString(name, t.opts.Replace)

	case types.ModeNumbering:
		return applyNumbering(name, t.opts.Search, counter)

	case types.ModePrefix:
		return applyPrefix(name, t.opts.Search, t.opts.Action)

	case types.ModeSuffix:
		return applySuffix(name, t.opts.Search, t.opts.Action)

	case types.ModeDateInsert:
		return applyDate(name, modTime, t.opts.DatePosition)

	case types.ModeUppercase:
		stem, ext := splitExt(name)
		return strings.ToUpper(stem) + strings.ToLower(ext)

	case types.ModeLowercase:
		return strings.ToLower(name)

	case types.ModeTitleCase:
		stem, ext := splitExt(name)
		return titleCase(stem) + strings.ToLower(ext)

	default:
		return name
	}
}

// splitExt splits a filename into stem and extension (with dot).
// A leading dot is part of the stem, so dotfiles have no extension.
func splitExt(name string) (string, string) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

// applyNumbering expands a pattern containing runs of '#' with the
// counter value, zero-padded to the run length. The pattern holds
// only the stem; the original extension is preserved. An empty
// pattern leaves the name unchanged.
func applyNumbering(name, pattern string, counter int) string {
	if pattern == "" {
		return name
	}

	_, ext := splitExt(name)

	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] != '#' {
			b.WriteByte(pattern[i])
			i++
			continue
		}
		run := 0
		for i < len(pattern) && pattern[i] == '#' {
			run++
			i++
		}
		// Counter values wider than the run overflow the padding.
		fmt.Fprintf(&b, "%0*d", run, counter)
	}

	return b.String() + ext
}

func applyPrefix(name, affix string, action types.AffixAction) string {
	if affix == "" {
		return name
	}
	if action == types.AffixRemove {
		if strings.HasPrefix(name, affix) {
			return name[len(affix):]
		}
		return name
	}
	return affix + name
}

func applySuffix(name, affix string, action types.AffixAction) string {
	if affix == "" {
		return name
	}
	stem, ext := splitExt(name)
	if action == types.AffixRemove {
		if strings.HasSuffix(stem, affix) {
			return stem[:len(stem)-len(affix)] + ext
		}
		return name
	}
	return stem + affix + ext
}

func applyDate(name string, modTime time.Time, pos types.DatePosition) string {
	date := DateStamp(modTime)
	stem, ext := splitExt(name)

	switch pos {
	case types.DateSuffix:
		return stem + "_" + date + ext
	case types.DateReplace:
		return date + ext
	default: // DatePrefix
		return date + "_" + stem + ext
	}
}

// DateStamp renders a modification time as an 8-digit YYYYMMDD
// string. The civil date is computed from the Unix timestamp with a
// proleptic Gregorian day-count algorithm; a zero time yields the
// sentinel "00000000".
func DateStamp(modTime time.Time) string {
	if modTime.IsZero() {
		return "00000000"
	}

	secs := modTime.Unix()
	days := secs / 86400
	if secs%86400 < 0 {
		days--
	}

	y, m, d := civilFromDays(days)
	return fmt.Sprintf("%04d%02d%02d", y, m, d)
}

// civilFromDays converts days since the Unix epoch to a civil
// (year, month, day) in the proleptic Gregorian calendar with the
// standard leap-year rule (divisible by 4 and not by 100, unless
// also by 400).
func civilFromDays(days int64) (int64, int64, int64) {
	z := days + 719468
	era := z / 146097
	if z < 0 && z%146097 != 0 {
		era--
	}
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

// titleCase capitalizes the first letter following start-of-string
// or any of whitespace, '_' and '-', and lowercases every other
// letter. Separators pass through unchanged.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	capitalize := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r) || r == '_' || r == '-':
			capitalize = true
			b.WriteRune(r)
		case capitalize && unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
			capitalize = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}

// Package display renders previews and summaries as plain text for
// the non-interactive CLI.
package display

import (
	"fmt"
	"io"
	"time"

	"github.com/Querulantenkind/rnm/pkg/types"
)

// WritePreviews prints one line per proposed rename. Unchanged files
// are marked so the user sees the full considered set.
func WritePreviews(w io.Writer, previews []types.RenamePreview) {
	for _, p := range previews {
		if p.WillChange {
			fmt.Fprintf(w, "  %s -> %s\n", p.OriginalName, p.NewName)
		} else {
			fmt.Fprintf(w, "  %s (unchanged)\n", p.OriginalName)
		}
	}
}

// DescribeMode renders a one-line summary of the mode and its
// parameters, used for console output and history descriptions.
func DescribeMode(mode types.RenameMode, opts types.Options) string {
	switch mode {
	case types.ModeSearchReplace:
		return fmt.Sprintf("%s: '%s' -> '%s'", mode.DisplayName(), opts.Search, opts.Replace)
	case types.ModeRegex:
		return fmt.Sprintf("%s: '%s' -> '%s'", mode.DisplayName(), opts.Search, opts.Replace)
	case types.ModeNumbering:
		return fmt.Sprintf("%s: pattern '%s' from %d step %d", mode.DisplayName(), opts.Search, opts.NumberStart, opts.NumberStep)
	case types.ModePrefix, types.ModeSuffix:
		action := "add"
		if opts.Action == types.AffixRemove {
			action = "remove"
		}
		return fmt.Sprintf("%s: '%s' (%s)", mode.DisplayName(), opts.Search, action)
	case types.ModeDateInsert:
		return fmt.Sprintf("%s: %s (YYYYMMDD)", mode.DisplayName(), opts.DatePosition.DisplayName())
	default:
		return mode.DisplayName()
	}
}

// WriteOperations prints recorded history operations, newest last.
func WriteOperations(w io.Writer, ops []types.RenameOperation) {
	for _, op := range ops {
		fmt.Fprintf(w, "  %s  %s (%d file(s)) in %s\n",
			formatUnix(op.Timestamp), op.Description, len(op.Entries), op.Directory)
	}
}

func formatUnix(secs int64) string {
	return time.Unix(secs, 0).Format("2006-01-02 15:04")
}

// Package undo reverses the most recently applied rename batch.
// Undo is best-effort: entries that can no longer be reversed are
// skipped individually instead of aborting the whole operation.
package undo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Querulantenkind/rnm/internal/history"
)

// ErrNothingToUndo is returned when the history is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// Engine consumes the history store independently of the forward
// rename path.
type Engine struct {
	store *history.Store
}

// New creates an undo engine over the given history store.
func New(store *history.Store) *Engine {
	return &Engine{store: store}
}

// UndoLast pops the most recent operation and re-applies its mapping
// in reverse. The popped operation is considered consumed once undo
// is attempted: the shortened history is persisted regardless of how
// many individual entries succeeded. An error is reported only when
// zero entries were undone and at least one entry failed.
func (e *Engine) UndoLast() (int, string, error) {
	h, err := e.store.Load()
	if err != nil {
		return 0, "", err
	}

	op, ok := h.Pop()
	if !ok {
		return 0, "", ErrNothingToUndo
	}

	undone := 0
	var problems []string

	// Reverse order: the last forward rename is reversed first.
	for i := len(op.Entries) - 1; i >= 0; i-- {
		entry := op.Entries[i]
		currentPath := filepath.Join(op.Directory, entry.NewName)
		originalPath := filepath.Join(op.Directory, entry.OriginalName)

		// The renamed file may have been moved or deleted since.
		if _, err := os.Lstat(currentPath); err != nil {
			problems = append(problems, fmt.Sprintf("renamed file no longer exists: %s", entry.NewName))
			continue
		}

		// The original name may have been taken by another file.
		// Case-only differences are fine, as in forward execution.
		if _, err := os.Lstat(originalPath); err == nil && !strings.EqualFold(entry.NewName, entry.OriginalName) {
			problems = append(problems, fmt.Sprintf("original name already taken: %s", entry.OriginalName))
			continue
		}

		if err := os.Rename(currentPath, originalPath); err != nil {
			problems = append(problems, fmt.Sprintf("failed to restore %s: %v", entry.OriginalName, err))
			continue
		}
		undone++
	}

	if err := e.store.Save(h); err != nil && undone == 0 {
		return 0, op.Directory, err
	}

	if undone == 0 && len(problems) > 0 {
		return 0, op.Directory, fmt.Errorf("undo failed:\n%s", strings.Join(problems, "\n"))
	}

	return undone, op.Directory, nil
}

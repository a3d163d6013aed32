// Package executor validates and applies rename batches. A Batch
// moves through an explicit state progression (unvalidated ->
// validated -> executed) so that an unvalidated batch can never
// touch the filesystem.
package executor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Querulantenkind/rnm/internal/history"
	"github.com/Querulantenkind/rnm/internal/log"
	"github.com/Querulantenkind/rnm/pkg/types"
)

// ErrNotValidated is returned when Execute is called on a batch that
// has not passed validation.
var ErrNotValidated = errors.New("batch has not been validated")

// ValidationError aggregates every pre-execution conflict found in a
// batch. When any problem exists the whole batch is rejected and
// zero renames are performed.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed:\n" + strings.Join(e.Problems, "\n")
}

// ExecutionError reports a filesystem rename that failed mid-batch.
// Renames applied before the failure remain applied.
type ExecutionError struct {
	From string
	To   string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to rename %q to %q: %v", e.From, e.To, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

type batchState int

const (
	stateUnvalidated batchState = iota
	stateValidated
	stateExecuted
)

// Batch is a set of proposed renames bound to one directory.
type Batch struct {
	previews []types.RenamePreview
	dir      string
	state    batchState
	applied  []types.RenameEntry
}

// NewBatch creates an unvalidated batch from previews.
func NewBatch(previews []types.RenamePreview, dir string) *Batch {
	return &Batch{previews: previews, dir: dir}
}

// Validate checks every changing preview against live filesystem
// state. All problems are collected so the caller sees the complete
// report in one pass.
func (b *Batch) Validate() error {
	var problems []string

	for _, p := range b.previews {
		if !p.WillChange {
			continue
		}

		oldPath := filepath.Join(b.dir, p.OriginalName)
		newPath := filepath.Join(b.dir, p.NewName)

		if _, err := os.Lstat(oldPath); err != nil {
			problems = append(problems, fmt.Sprintf("source file does not exist: %s", p.OriginalName))
		}

		// A destination that exists is only acceptable for a
		// case-only rename, so case changes work on
		// case-insensitive filesystems.
		if _, err := os.Lstat(newPath); err == nil && !strings.EqualFold(p.OriginalName, p.NewName) {
			problems = append(problems, fmt.Sprintf("destination already exists: %s", p.NewName))
		}

		if strings.ContainsAny(p.NewName, `/\`) {
			problems = append(problems, fmt.Sprintf("invalid filename: %s", p.NewName))
		}

		if p.NewName == "" {
			problems = append(problems, "empty filename is not allowed")
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	b.state = stateValidated
	return nil
}

// Execute applies the validated batch sequentially in its sorted
// order. On the first rename failure it stops and reports the
// failing pair; earlier renames stay applied.
func (b *Batch) Execute() (int, error) {
	if b.state != stateValidated {
		return 0, ErrNotValidated
	}
	b.state = stateExecuted

	renamed := 0
	for _, p := range b.previews {
		if !p.WillChange {
			continue
		}

		oldPath := filepath.Join(b.dir, p.OriginalName)
		newPath := filepath.Join(b.dir, p.NewName)

		if err := os.Rename(oldPath, newPath); err != nil {
			return renamed, &ExecutionError{From: p.OriginalName, To: p.NewName, Err: err}
		}
		renamed++
		b.applied = append(b.applied, types.RenameEntry{
			OriginalName: p.OriginalName,
			NewName:      p.NewName,
		})
	}

	return renamed, nil
}

// Applied returns the original -> new mappings actually performed.
func (b *Batch) Applied() []types.RenameEntry {
	return b.applied
}

// Executor runs the two-phase validate/execute protocol and records
// successful batches in the history store.
type Executor struct {
	store  *history.Store
	logger *log.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger attaches a logger for per-rename outcomes.
func WithLogger(logger *log.Logger) Option {
	return func(e *Executor) {
		e.logger = logger
	}
}

// New creates an Executor. store may be a disabled store; history
// recording then silently does nothing.
func New(store *history.Store, opts ...Option) *Executor {
	e := &Executor{store: store}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run validates and executes previews against dir. On success the
// applied mappings are appended to history under description.
// History persistence failures are logged and swallowed: history is
// a convenience, not a correctness requirement.
func (e *Executor) Run(previews []types.RenamePreview, dir, description string) (int, error) {
	batch := NewBatch(previews, dir)

	if err := batch.Validate(); err != nil {
		return 0, err
	}

	renamed, execErr := batch.Execute()

	if e.logger != nil {
		for _, entry := range batch.Applied() {
			e.logger.LogRename(entry.OriginalName, entry.NewName, nil)
		}
		if execErr != nil {
			var ee *ExecutionError
			if errors.As(execErr, &ee) {
				e.logger.LogRename(ee.From, ee.To, ee.Err)
			}
		}
	}

	if execErr == nil && renamed > 0 {
		op := types.RenameOperation{
			Timestamp:   time.Now().Unix(),
			Directory:   dir,
			Entries:     batch.Applied(),
			Description: description,
		}
		if err := e.store.Append(op); err != nil && e.logger != nil {
			e.logger.Error("failed to record rename history", err)
		}
	}

	return renamed, execErr
}

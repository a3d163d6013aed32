// Package history persists applied rename batches so they can be
// undone later. The store is a single JSON file under the user's
// data directory, bounded to the most recent operations.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Querulantenkind/rnm/pkg/types"
)

// MaxOperations bounds the history ring; the oldest entry is evicted
// first when the ring is full.
const MaxOperations = 50

// History is an ordered sequence of applied operations, oldest first.
type History struct {
	Operations []types.RenameOperation `json:"operations"`
}

// Push appends an operation, evicting the oldest entries above
// MaxOperations.
func (h *History) Push(op types.RenameOperation) {
	h.Operations = append(h.Operations, op)
	if len(h.Operations) > MaxOperations {
		h.Operations = h.Operations[len(h.Operations)-MaxOperations:]
	}
}

// Pop removes and returns the most recent operation.
func (h *History) Pop() (types.RenameOperation, bool) {
	if len(h.Operations) == 0 {
		return types.RenameOperation{}, false
	}
	op := h.Operations[len(h.Operations)-1]
	h.Operations = h.Operations[:len(h.Operations)-1]
	return op, true
}

// Peek returns the most recent operation without removing it.
func (h *History) Peek() (*types.RenameOperation, bool) {
	if len(h.Operations) == 0 {
		return nil, false
	}
	return &h.Operations[len(h.Operations)-1], true
}

// Len returns the number of stored operations.
func (h *History) Len() int {
	return len(h.Operations)
}

// Store reads and writes the history file. Each call loads a fresh
// snapshot; there is no shared in-process instance, so overlapping
// external writers are last-writer-wins.
type Store struct {
	path string
}

// NewStore resolves the per-user history file location. When no home
// directory is resolvable the store is disabled: loads return an
// empty history and saves are no-ops.
func NewStore() *Store {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &Store{}
	}
	return &Store{path: filepath.Join(homeDir, ".rnm", "history.json")}
}

// NewStoreAt uses an explicit file path. Used by tests and by
// callers that inject a location.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Enabled reports whether the store has a usable backing location.
func (s *Store) Enabled() bool {
	return s.path != ""
}

// Load reads the history file. A missing or disabled store yields an
// empty history rather than an error.
func (s *Store) Load() (*History, error) {
	h := &History{}

	if s.path == "" {
		return h, nil
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return h, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	if err := json.Unmarshal(data, h); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}

	return h, nil
}

// Save writes the history file, creating parent directories as
// needed. A disabled store is a no-op.
func (s *Store) Save(h *History) error {
	if s.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}

	return nil
}

// Append loads the current history, pushes op and saves the result.
func (s *Store) Append(op types.RenameOperation) error {
	h, err := s.Load()
	if err != nil {
		return err
	}
	h.Push(op)
	return s.Save(h)
}

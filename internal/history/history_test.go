package history

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/Querulantenkind/rnm/pkg/types"
)

func op(desc string) types.RenameOperation {
	return types.RenameOperation{
		Timestamp:   time.Now().Unix(),
		Directory:   "/tmp",
		Entries:     []types.RenameEntry{{OriginalName: "a.txt", NewName: "b.txt"}},
		Description: desc,
	}
}

func TestLoadReturnsEmptyHistoryWhenFileMissing(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "nested", "history.json"))

	h, err := store.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if h.Len() != 0 {
		t.Fatalf("expected empty history, got %d operations", h.Len())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "history.json"))

	h := &History{}
	h.Push(op("first"))
	h.Push(op("second"))

	if err := store.Save(h); err != nil {
		t.Fatalf("failed to save history: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load history: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("expected 2 operations, got %d", loaded.Len())
	}
	top, ok := loaded.Peek()
	if !ok || top.Description != "second" {
		t.Fatalf("expected most recent operation to be 'second', got %+v", top)
	}
	if top.Entries[0].OriginalName != "a.txt" || top.Entries[0].NewName != "b.txt" {
		t.Fatalf("unexpected entries: %+v", top.Entries)
	}
}

func TestPushEvictsOldestAboveLimit(t *testing.T) {
	h := &History{}
	for i := 0; i < MaxOperations+1; i++ {
		h.Push(op(fmt.Sprintf("op-%d", i)))
	}

	if h.Len() != MaxOperations {
		t.Fatalf("expected %d operations, got %d", MaxOperations, h.Len())
	}
	if h.Operations[0].Description != "op-1" {
		t.Fatalf("expected oldest operation to be evicted, found %s", h.Operations[0].Description)
	}
	top, _ := h.Peek()
	if top.Description != fmt.Sprintf("op-%d", MaxOperations) {
		t.Fatalf("unexpected newest operation: %s", top.Description)
	}
}

func TestPopRemovesNewestFirst(t *testing.T) {
	h := &History{}
	h.Push(op("older"))
	h.Push(op("newer"))

	got, ok := h.Pop()
	if !ok || got.Description != "newer" {
		t.Fatalf("expected to pop 'newer', got %+v", got)
	}
	if h.Len() != 1 {
		t.Fatalf("expected 1 remaining operation, got %d", h.Len())
	}

	if _, ok := h.Pop(); !ok {
		t.Fatal("expected second pop to succeed")
	}
	if _, ok := h.Pop(); ok {
		t.Fatal("expected pop on empty history to fail")
	}
}

func TestDisabledStoreIsNoOp(t *testing.T) {
	store := NewStoreAt("")
	if store.Enabled() {
		t.Fatal("expected store without path to be disabled")
	}

	if err := store.Append(op("ignored")); err != nil {
		t.Fatalf("expected disabled append to succeed, got %v", err)
	}

	h, err := store.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if h.Len() != 0 {
		t.Fatalf("expected disabled store to stay empty, got %d", h.Len())
	}
}

func TestAppendPersists(t *testing.T) {
	store := NewStoreAt(filepath.Join(t.TempDir(), "history.json"))

	if err := store.Append(op("only")); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("expected 1 operation, got %d", loaded.Len())
	}
}

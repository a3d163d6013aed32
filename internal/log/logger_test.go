package log

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readFileString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(data)
}

func TestTextLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rnm.log")

	l, err := New(path, false)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	l.LogRename("a.txt", "b.txt", nil)
	l.LogRename("c.txt", "d.txt", errors.New("permission denied"))
	l.Info("done")
	if err := l.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	out := readFileString(t, path)
	if !strings.Contains(out, "renamed: a.txt -> b.txt") {
		t.Fatalf("missing rename line: %s", out)
	}
	if !strings.Contains(out, "rename failed: c.txt -> d.txt") || !strings.Contains(out, "permission denied") {
		t.Fatalf("missing error line: %s", out)
	}
	if !strings.Contains(out, "INFO done") {
		t.Fatalf("missing info line: %s", out)
	}
}

func TestJSONLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rnm.log")

	l, err := New(path, true)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	l.LogRename("a.txt", "b.txt", nil)
	l.Close()

	lines := strings.Split(strings.TrimSpace(readFileString(t, path)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single JSON line, got %d", len(lines))
	}

	var entry LogEntry
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if entry.From != "a.txt" || entry.To != "b.txt" || entry.Level != "INFO" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestDisabledFileSink(t *testing.T) {
	l, err := New("", false)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	// Must not panic without a file sink.
	l.LogRename("a", "b", nil)
	l.Error("oops", errors.New("boom"))
	if err := l.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes rename activity to an optional log file, as JSON
// lines or plain text, and run summaries to the console.
type Logger struct {
	mu      sync.Mutex
	console io.Writer
	file    *os.File
	logJSON bool
}

// New opens a logger writing to logFilePath. An empty path disables
// the file sink; console output stays available.
func New(logFilePath string, logJSON bool) (*Logger, error) {
	l := &Logger{
		console: os.Stdout,
		logJSON: logJSON,
	}

	if logFilePath == "" {
		return l, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l.file = file

	return l, nil
}

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// LogRename records the outcome of a single rename.
func (l *Logger) LogRename(from, to string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     "INFO",
		Message:   fmt.Sprintf("renamed: %s -> %s", from, to),
		From:      from,
		To:        to,
	}

	if err != nil {
		entry.Level = "ERROR"
		entry.Message = fmt.Sprintf("rename failed: %s -> %s", from, to)
		entry.Error = err.Error()
	}

	l.writeEntry(entry)
}

func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writeEntry(LogEntry{
		Timestamp: time.Now(),
		Level:     "INFO",
		Message:   msg,
	})
}

func (l *Logger) Error(msg string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     "ERROR",
		Message:   msg,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	l.writeEntry(entry)
}

func (l *Logger) writeEntry(entry LogEntry) {
	if l.file == nil {
		return
	}

	if l.logJSON {
		data, _ := json.Marshal(entry)
		l.file.Write(data)
		l.file.Write([]byte("\n"))
		return
	}

	line := fmt.Sprintf("[%s] %s %s\n",
		entry.Timestamp.Format("2006-01-02 15:04:05"),
		entry.Level,
		entry.Message,
	)
	if entry.Error != "" {
		line = fmt.Sprintf("[%s] %s %s - Error: %s\n",
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Level,
			entry.Message,
			entry.Error,
		)
	}
	l.file.WriteString(line)
}

// Summary prints a completed-run summary to the console.
func (l *Logger) Summary(renamed, unchanged int, elapsed time.Duration) {
	fmt.Fprintf(l.console, "%d file(s) renamed, %d unchanged (%s)\n",
		renamed, unchanged, elapsed.Round(time.Millisecond))
}

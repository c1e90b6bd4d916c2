// Package logger keeps a timestamped event log in memory and mirrors it
// to an append-only file.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is where the log file is written, relative to the working
// directory.
const DefaultPath = "logs/gravisim.txt"

// Logger collects log lines. Safe for concurrent use.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
}

// New returns a logger writing to DefaultPath.
func New() *Logger {
	return NewPath(DefaultPath)
}

// NewPath returns a logger writing to the given file and ensures its
// directory exists.
func NewPath(path string) *Logger {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	return &Logger{path: path, lines: make([]string, 0)}
}

// Log records a line, prefixed with the current time, and appends it to
// the log file. File errors are swallowed; logging must never take the
// sandbox down.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf records a formatted line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of every line logged so far.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

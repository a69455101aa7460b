// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/crossgrade/crossgrade/internal/core/ports"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method of zerr errors; anything else
// falls back to the full Error() text.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
}

// New creates a new Logger writing to stderr.
func New() ports.Logger {
	return &Logger{logger: newSlog(os.Stderr)}
}

func newSlog(w io.Writer) *slog.Logger {
	return slog.New(NewPrettyHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// SetOutput updates the logger's output destination. Nil restores stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.logger = newSlog(w)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain rendered hierarchically.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries traverses the chain, taking one message per zerr link
// and the full text of the first foreign error it meets.
func collectErrorEntries(err error) []string {
	var entries []string

	for err != nil {
		m, ok := err.(messager)
		if !ok {
			entries = append(entries, err.Error())
			break
		}

		entries = append(entries, m.Message())
		err = errors.Unwrap(err)
	}

	return entries
}

// formatErrorEntries renders the collected messages as a main line followed
// by an indented cause list.
func formatErrorEntries(entries []string) string {
	var lines []string

	for i, entry := range entries {
		entryLines := strings.Split(entry, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+entryLines[0])
			// Indent continuation lines to align with "Error: "
			for _, line := range entryLines[1:] {
				lines = append(lines, "       "+line)
			}

			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, "    → "+entryLines[0])
		for _, line := range entryLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

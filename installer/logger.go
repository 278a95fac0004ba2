package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Logger provides structured logging with file output and in-memory
// buffering. A nil *Logger is safe to use and discards everything, so
// components take an optional logger without nil checks at call sites.
// It is safe for concurrent use from multiple goroutines.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	path     string
	messages []string
}

// NewLogger creates a Logger writing to a timestamped file in the temp
// directory: {prefix}-{timestamp}.log
func NewLogger(prefix string) (*Logger, error) {
	timestamp := time.Now().Format("20060102-150405")
	logPath := filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s.log", prefix, timestamp))

	f, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	l := &Logger{
		file:     f,
		path:     logPath,
		messages: make([]string, 0, 100),
	}
	l.Info("=== %s log ===", prefix)
	l.Info("started: %s", time.Now().Format(time.RFC3339))
	return l, nil
}

// Close closes the log file.
func (l *Logger) Close() {
	if l == nil || l.file == nil {
		return
	}
	l.Info("=== log ended: %s ===", time.Now().Format(time.RFC3339))
	l.file.Close()
}

// Path returns the path to the log file.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Content returns the full buffered log content.
func (l *Logger) Content() string {
	if l == nil {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.messages, "\n")
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log("INFO", format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log("WARN", format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log("ERROR", format, args...)
}

// Step logs a major milestone in an install or uninstall sequence.
func (l *Logger) Step(format string, args ...any) {
	l.log("STEP", format, args...)
}

func (l *Logger) log(level, format string, args ...any) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("[%s] %s: %s",
		time.Now().Format("15:04:05.000"), level, fmt.Sprintf(format, args...))
	l.messages = append(l.messages, line)

	if l.file != nil {
		fmt.Fprintln(l.file, line)
		l.file.Sync()
	}
}

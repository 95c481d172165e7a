// Where: internal/logfile/logfile.go
// What: Append-only event log shared by all operations.
// Why: Scheduled runs have no terminal; the log file is the audit trail.
package logfile

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Logger wraps a slog.Logger writing timestamped lines to an append-only
// file. The file is opened per invocation and never rotated or truncated.
type Logger struct {
	*slog.Logger
	file *os.File
}

// Open creates a Logger appending to path. When the file cannot be opened
// the logger degrades to stderr; logging failure never fails the tool.
func Open(path string) *Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &Logger{Logger: stderrLogger()}
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return &Logger{Logger: stderrLogger()}
	}
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(file, nil)),
		file:   file,
	}
}

func stderrLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// Close releases the underlying file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

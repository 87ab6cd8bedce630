// Package logger wraps zerolog for file-based application logs.
//
// The TUI owns the terminal, so log output goes to a file under the data dir.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// New returns a JSON logger writing to w with a role field and timestamps.
func New(w io.Writer, role string) *Logger {
	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Logger()
	return &Logger{l}
}

// NewFileLogger opens (or creates) path for appending and logs into it. The returned
// close func releases the file.
func NewFileLogger(path, role string) (*Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return New(file, role), file.Close, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

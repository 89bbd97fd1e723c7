// Package logging sets up the presenter's file logger. The terminal is
// owned by the UI, so logs never go to stdout or stderr while presenting.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DebugFile is the log file used by --debug when no path is configured.
const DebugFile = "termdeck.log"

// New returns a logger writing to path and a function that closes the
// file. An empty path discards all output. debug lowers the level to Debug.
func New(path string, debug bool) (*log.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file: %w", err)
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "termdeck",
		ReportTimestamp: true,
	})
	return logger, f.Close, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

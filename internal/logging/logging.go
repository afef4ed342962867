// Package logging configures the application's zerolog output. The TUI owns
// the terminal, so logs go to a file (or nowhere); stderr is only an option
// for non-interactive commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options selects where and how verbosely to log.
type Options struct {
	// FilePath receives append-mode JSON logs. Empty disables file output.
	FilePath string
	// Level is a zerolog level name ("debug", "info", ...). Unparseable
	// values fall back to info.
	Level string
	// Console mirrors logs to stderr in human-readable form. Never enable
	// this while the TUI is running.
	Console bool
}

// Setup builds the root logger. The returned closer releases the log file
// handle; it is non-nil even when no file is open.
func Setup(opts Options) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	var file *os.File

	if opts.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o755); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log directory: %w", err)
		}
		file, err = os.OpenFile(opts.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, file)
	}

	if len(writers) == 0 {
		return zerolog.Nop(), nopCloser{}, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().Timestamp().Logger()

	if file != nil {
		return logger, file, nil
	}
	return logger, nopCloser{}, nil
}

// Component returns a child logger tagged with a component name, so one log
// file interleaves engine, store and UI lines distinguishably.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

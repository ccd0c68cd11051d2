// Package logging builds the zerolog logger that serves as dexview's
// diagnostic channel.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options configure New.
type Options struct {
	// Level is parsed with zerolog.ParseLevel; unknown values mean info.
	Level string
	// File receives JSON lines when set. The TUI logs here because it owns
	// the terminal.
	File string
	// Console receives human-readable lines when set.
	Console io.Writer
}

// New returns a configured logger and a close func for any opened file.
// With neither File nor Console set the logger discards everything.
func New(opts Options) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }

	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	closeFn := noop

	if opts.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        opts.Console,
			TimeFormat: time.RFC3339,
		})
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, file)
		closeFn = file.Close
	}

	if len(writers) == 0 {
		return zerolog.Nop(), noop, nil
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "dexview").
		Logger()
	return logger, closeFn, nil
}

// Package logging builds the zerolog logger used for diagnostics. Reports go
// to files; everything else goes through this logger on stderr.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the given level. A nil w
// writes to stderr.
//
// The level parameter can be one of: debug, info, warn, error, fatal.
func New(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}

	if w == nil {
		w = os.Stderr
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    w != os.Stderr,
	}

	return zerolog.New(out).
		With().
		Timestamp().
		Logger().
		Level(lvl), nil
}

// Component returns a child logger tagged with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("cmp", name).Logger()
}

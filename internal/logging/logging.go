// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New returns the logger for this build. Debug builds get a colored
// console handler at Info level; production builds only report warnings
// and errors.
func New() *slog.Logger {
	return newLogger(os.Stderr, Debug)
}

// Level is the minimum level New logs at.
func Level() slog.Level {
	if Debug {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	if debug {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.TimeOnly,
		}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

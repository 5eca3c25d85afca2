// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing to w (os.Stderr if nil) at Info level,
// or Debug level when debug is set.
func New(debug bool, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs New(debug, w) as the default slog logger.
func Setup(debug bool, w io.Writer) {
	slog.SetDefault(New(debug, w))
}

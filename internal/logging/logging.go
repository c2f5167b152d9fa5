package logging

import (
	"io"
	"log/slog"
	"os"
)

type Options struct {
	Debug  bool
	Writer io.Writer
}

// New returns a text logger writing to stderr unless another writer is set.
// Only warnings and errors are shown unless debug is enabled.
func New(opts Options) *slog.Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := slog.LevelWarn
	if opts.Debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.Debug,
	}))
}

func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

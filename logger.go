package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured JSON logger with the given level. Debug
// level also records the source position of each call.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level.Level() <= slog.LevelDebug,
	})
	return slog.New(h).With("app", "photo-editor")
}

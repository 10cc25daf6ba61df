// Package dlog configures the process-wide structured logger. All DSim
// binaries log human-readable, leveled output to stderr via log/slog with a
// tint handler; colors are disabled automatically when stderr is not a
// terminal or when requested explicitly.
package dlog

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Setup installs the default logger and returns it. Recognized levels are
// trace (mapped to debug), debug, info, warn and error; anything else falls
// back to info.
func Setup(level string, noColor bool) *slog.Logger {
	w := os.Stderr
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      parseLevel(level),
		TimeFormat: time.TimeOnly,
		NoColor:    noColor || !isatty.IsTerminal(w.Fd()),
	}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace", "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Package applog configures the process-wide structured logger.
package applog

import (
	"log/slog"
	"os"
)

var global *slog.Logger

// Init (re)configures the default slog logger. verbose selects Debug over
// Warn as the minimum level; timestamps are stripped since dirwalk's output
// is read interactively, not grepped from a log file.
func Init(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}
	global = slog.New(slog.NewTextHandler(os.Stderr, opts))
	slog.SetDefault(global)
}

// Logger returns the configured global logger, initializing a quiet default
// if Init hasn't run yet.
func Logger() *slog.Logger {
	if global == nil {
		Init(false)
	}
	return global
}

// Package logging provides component-scoped structured loggers for panedeck.
//
// All components share one slog handler. The level comes from
// PANEDECK_LOG_LEVEL (debug, info, warn, error; default info). The terminal
// is owned by the UI, so logs are only written when PANEDECK_LOG_FILE names a
// file to append to; otherwise they are discarded.
//
// Usage:
//
//	log := logging.New("ui")
//	log.Debug("mode change", "from", "Layout", "to", "Focus")
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	initLogger sync.Once
	baseLogger *slog.Logger
	levelVar   = new(slog.LevelVar)
)

// New returns a logger tagged with component. An empty component returns the
// base logger. The base logger is built lazily on first use.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		levelVar.Set(parseLevel(os.Getenv("PANEDECK_LOG_LEVEL")))
		baseLogger = slog.New(slog.NewTextHandler(output(os.Getenv("PANEDECK_LOG_FILE")), &slog.HandlerOptions{
			Level: levelVar,
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// SetLevel changes the level of every logger returned by New. It is used when
// the level comes from the config file rather than the environment.
func SetLevel(value string) {
	New("")
	levelVar.Set(parseLevel(value))
}

// output opens path for appending. Without a usable path logs are dropped
// rather than drawn over the alternate screen.
func output(path string) io.Writer {
	if path == "" {
		return io.Discard
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard
	}
	return f
}

// parseLevel converts a level name to a slog.Level. Unknown values are info.
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

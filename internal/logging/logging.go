package logging

import (
	"log/slog"
	"os"
	"strings"
)

var level = new(slog.LevelVar)

// Init installs a text handler as the default logger. The level is read
// from LOG_LEVEL (debug, info, warn, error) and defaults to info.
func Init() {
	level.Set(parseLevel(os.Getenv("LOG_LEVEL")))
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// SetLevel adjusts the level of the installed handler.
func SetLevel(l slog.Level) {
	level.Set(l)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Package logging configures the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

var level = new(slog.LevelVar)

// Configure installs a text handler on stdout as the default logger.
// Unknown level names fall back to info.
func Configure(name string) {
	SetLevel(name)
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// SetLevel changes the level of the logger installed by Configure.
func SetLevel(name string) {
	level.Set(ParseLevel(name))
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Package observability provides structured logging setup.
package observability

import (
	"io"
	"log/slog"
	"strings"
)

// InitLogger configures the global slog logger with JSON output at the given
// level. The CLI passes stderr so stdout carries only search results.
func InitLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

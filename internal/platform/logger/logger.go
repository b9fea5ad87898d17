package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/framecast/client/internal/config"
)

// Setup initializes and configures the client's logging system based on the
// provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger.
//
// An invalid log level falls back to info with a warning rather than
// failing startup.
func Setup(cfg config.ServerConfig) *slog.Logger {
	return setup(cfg, os.Stdout)
}

func setup(cfg config.ServerConfig, w io.Writer) *slog.Logger {
	level, ok := parseLevel(cfg.LogLevel)
	if !ok {
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// parseLevel maps a case-insensitive level name to a slog.Level. The
// second return value is false when the name is unknown and the info
// default was applied.
func parseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

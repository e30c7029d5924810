package cmd

import (
	"log/slog"
	"strings"
)

const defaultHTTPPort = "8080"

// Config holds the process settings read from the environment.
type Config struct {
	HTTPPort string
	LogLevel string
}

// WithDefaults fills unset values.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = defaultHTTPPort
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	return c
}

// SlogLevel maps LogLevel to a slog level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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

// Package logging builds the zerolog loggers used by the demo and bridges GLib log
// output into them.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLevel  = "GTKBRIDGE_LOG_LEVEL"
	EnvFormat = "GTKBRIDGE_LOG_FORMAT"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer // defaults to stderr
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel accepts trace, debug, info, warn and error.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
}

// NewFromEnv creates a logger based on environment variables
// GTKBRIDGE_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// GTKBRIDGE_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ConfigFromEnv(DefaultConfig()))
}

// ConfigFromEnv overrides cfg with the environment. Invalid values are ignored.
func ConfigFromEnv(cfg Config) Config {
	if v := os.Getenv(EnvLevel); v != "" {
		if level, err := ParseLevel(v); err == nil {
			cfg.Level = level
		}
	}

	switch format := os.Getenv(EnvFormat); format {
	case "json", "console":
		cfg.Format = format
	}
	return cfg
}

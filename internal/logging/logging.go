// Package logging provides structured logging based on zerolog.
package logging

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mossline/scribe/internal/config"
)

// New builds the run logger. Logs go to stderr so stdout stays clean for
// document output; format "console" gets a human-readable writer, anything
// else structured JSON. Each run carries a fresh run_id for correlating
// warnings with the final summary.
func New(cfg config.LogConfig) zerolog.Logger {
	var out = zerolog.New(os.Stderr)
	if strings.ToLower(cfg.Format) == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
	return out.Level(ParseLevel(cfg.Level)).With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to a
// zerolog.Level. Unknown strings default to InfoLevel.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

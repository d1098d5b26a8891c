package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Options controls where and how log lines are written
type Options struct {
	Out     io.Writer
	Level   string // debug, info, warn, error
	Format  string // "json" or "pretty"
	Service string
}

// New creates a new zerolog logger with structured output
func New(opts Options) zerolog.Logger {
	// Configure zerolog
	zerolog.TimeFieldFormat = time.RFC3339

	logLevel := ParseLevel(opts.Level)

	// Use pretty console output in development
	if opts.Format == "pretty" {
		return zerolog.New(zerolog.ConsoleWriter{Out: opts.Out, TimeFormat: time.RFC3339}).
			Level(logLevel).
			With().
			Timestamp().
			Caller().
			Str("service", opts.Service).
			Logger()
	}

	// JSON output for production
	return zerolog.New(opts.Out).
		Level(logLevel).
		With().
		Timestamp().
		Str("service", opts.Service).
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// EnvLevel is the environment variable controlling the log level.
const EnvLevel = "VIACONFIG_LOG"

// New returns the root logger, writing JSON to stderr at the level selected
// by VIACONFIG_LOG (debug, info, warn, error; default warn).
func New() zerolog.Logger {
	return NewWithWriter(os.Stderr, os.Getenv(EnvLevel))
}

// NewWithWriter builds a logger against an explicit writer and level string.
// Split out from New so tests can capture output.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", "viaconfig").
		Logger()
}

// Component returns a sub-logger tagged with a component name.
//
// Example:
//
//	log := logging.Component(root, "loader")
//	log.Debug().Str("path", path).Msg("parsing document")
func Component(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

// parseLevel converts a level string to a zerolog level.
// Unrecognised or empty input falls back to warn.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

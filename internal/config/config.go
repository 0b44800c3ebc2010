// internal/config/config.go
//
// Diagnostic settings for the game binary.
// Gameplay itself is not configurable; these only control what zerolog
// writes to stderr.
//
// Environment variables:
//   LOG_LEVEL=warn      zerolog level name (trace, debug, info, warn, error, ...)
//   LOG_FORMAT=console  "console" for human-readable output, "json" for raw events
//
// A `.env` file in the working directory is loaded first when present.

package config

import (
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	defaultLevel = "warn"
)

// Config holds the logging settings.
type Config struct {
	LogLevel  string
	LogFormat string
}

// Load reads `.env` (if any) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	format := strings.ToLower(getEnv("LOG_FORMAT", FormatConsole))
	if format != FormatJSON {
		format = FormatConsole
	}
	return Config{
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", defaultLevel)),
		LogFormat: format,
	}
}

// Level parses LogLevel, falling back to warn for unknown names.
func (c Config) Level() zerolog.Level {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil && c.LogLevel != "" {
		return lvl
	}
	return zerolog.WarnLevel
}

// Logger builds a logger writing to w in the configured format.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	if c.LogFormat != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(c.Level()).With().Timestamp().Logger()
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

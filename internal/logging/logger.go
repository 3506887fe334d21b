// Package logging provides the zerolog wiring shared by every internal
// package of this module.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration.
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stderr

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	case "json":
		output = os.Stderr
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromEnv resolves NATIVEWINDOW_LOG_LEVEL and NATIVEWINDOW_LOG_FORMAT
// the same way internal/config resolves every other setting: through
// viper's env binding rather than a bespoke os.Getenv reader, so this
// package and internal/config agree on one env-var resolution mechanism
// instead of two.
//
// NATIVEWINDOW_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// NATIVEWINDOW_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("NATIVEWINDOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("log.level", cfg.Level.String())
	v.SetDefault("log.format", cfg.Format)

	if parsed, err := zerolog.ParseLevel(v.GetString("log.level")); err == nil {
		cfg.Level = parsed
	}
	if format := v.GetString("log.format"); format == "json" || format == "console" {
		cfg.Format = format
	}

	return New(cfg)
}

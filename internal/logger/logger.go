// Package logger configures the application's structured logging.
//
// It builds the root zerolog logger from config; request-scoped child loggers
// are derived from it by the middleware package.
package logger

import (
	"io"
	"os"

	"github.com/deppfellow/countries-api/internal/config"
	"github.com/rs/zerolog"
)

// New builds the application logger from config.
//
// Format "console" produces human-friendly colored output for local work;
// anything else produces JSON, which log pipelines expect. Unknown levels
// fall back to info rather than failing startup over a logging knob.
func New(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "countries-api").
		Str("env", cfg.Primary.Env).
		Logger()
}

// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), loads them into structured Go types, and validates that
// required values are present so the app fails fast on bad configuration.
//
// Env vars use the COUNTRIES_ prefix. A double underscore separates nesting
// levels, so:
//
//	COUNTRIES_SERVER__PORT         -> server.port         -> Config.Server.Port
//	COUNTRIES_SERVER__READ_TIMEOUT -> server.read_timeout -> Config.Server.ReadTimeout
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, godotenv loads it into the
	// process environment before any env vars are read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// envPrefix is the prefix every configuration env var must carry.
const envPrefix = "COUNTRIES_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from, and the
// `validate:"required"` tags enforce presence via go-playground/validator.
//
// Logging is a pointer because it is optional; defaults are injected when it
// is missing.
type Config struct {
	Primary Primary        `koanf:"primary" validate:"required"`
	Server  ServerConfig   `koanf:"server" validate:"required"`
	Logging *LoggingConfig `koanf:"logging"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and to switch behavior per environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as integer seconds and converted to time.Duration where
// the http.Server is built.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required"`

	// Format selects the output format: "json" or "console".
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// DefaultLoggingConfig returns the logging configuration used when none is
// provided: info-level JSON output.
func DefaultLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:  "info",
		Format: "json",
	}
}

// New loads configuration from the environment, unmarshals it into Config,
// validates it, and applies defaults.
//
// It returns an error instead of exiting so the caller (main) decides how
// startup failures are reported.
func New() (*Config, error) {
	k := koanf.New(".")

	// Load env vars carrying the prefix. The key-mapping function strips the
	// prefix, lowercases the rest, and turns "__" into the "." delimiter so
	// nested struct fields are addressable from flat env var names. The
	// value-mapping half splits comma-separated lists so []string fields
	// (CORS origins) can be populated from a single env var.
	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		mapped := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "__", ".")
		if strings.Contains(value, ",") {
			return mapped, strings.Split(value, ",")
		}
		return mapped, value
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}

	// Logging is optional; inject defaults before validation so a missing
	// block does not fail the required checks on its fields.
	if mainConfig.Logging == nil {
		mainConfig.Logging = DefaultLoggingConfig()
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return mainConfig, nil
}

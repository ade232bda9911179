// Package config manages environment variables.
//
// It reads variables from the environment (optionally seeded from a `.env`
// file), loads them into structured Go types, validates that required
// values are present and applies defaults for the optional blocks.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process environment
	// before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// Env vars are read with the CHAINFOLIO_ prefix and nested through the "."
// delimiter, e.g. CHAINFOLIO_SERVER.PORT -> Config.Server.Port.
// Observability is a pointer because it is optional; when absent, defaults
// are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts are
// stored as integer seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	RateLimitPerSecond float64  `koanf:"rate_limit_per_second"`
	RateLimitBurst     int      `koanf:"rate_limit_burst"`
}

// RedisConfig contains the redis connection details backing the price
// cache. Address is "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// New loads configuration from environment variables, unmarshals it into
// Config, validates it and applies defaults. Invalid configuration is a
// startup failure, so errors here are fatal.
func New() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider("CHAINFOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CHAINFOLIO_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are forced so telemetry always reports
	// consistent values regardless of what the user set.
	mainConfig.Observability.ServiceName = "chainfolio"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	if mainConfig.Server.RateLimitPerSecond <= 0 {
		mainConfig.Server.RateLimitPerSecond = 50
	}
	if mainConfig.Server.RateLimitBurst <= 0 {
		mainConfig.Server.RateLimitBurst = 100
	}

	return mainConfig, nil
}

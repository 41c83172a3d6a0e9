package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds CLI configuration. Values are taken from environment
// variables with the prefix "MUX_". Example: MUX_TOKEN_ID=... MUX_LOG_LEVEL=debug.
type Config struct {
	BaseURL     string `envconfig:"BASE_URL" default:"https://api.mux.com"`
	TokenID     string `envconfig:"TOKEN_ID"`
	TokenSecret string `envconfig:"TOKEN_SECRET"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load populates Config from environment variables (prefix MUX_).
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("MUX", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Level parses the configured log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	switch c.LogLevel {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

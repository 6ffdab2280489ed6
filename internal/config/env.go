package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds process settings for the HTTP transport.
type ServerConfig struct {
	Addr             string   `env:"IULCOMPARE_ADDR" envDefault:":8080"`
	LogLevel         string   `env:"IULCOMPARE_LOG_LEVEL" envDefault:"info"`
	LogFormat        string   `env:"IULCOMPARE_LOG_FORMAT" envDefault:"json"`
	MetricsNamespace string   `env:"IULCOMPARE_METRICS_NAMESPACE" envDefault:"iulcompare"`
	AllowedOrigins   []string `env:"IULCOMPARE_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// LoadServerConfig reads ServerConfig from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	switch cfg.LogFormat {
	case "json", "console":
	default:
		return ServerConfig{}, fmt.Errorf("log format must be 'json' or 'console', got %q", cfg.LogFormat)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

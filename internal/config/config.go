package config

import (
	"github.com/caarlos0/env/v11"
)

// Config stores environment-driven settings for the CLI.
type Config struct {
	// ConfigPath is the path to the YAML chain definition.
	ConfigPath string `env:"PURCHASE_CHAIN_CONFIG" envDefault:"chain.yaml"`
	// LogLevel sets the logger level.
	LogLevel string `env:"PURCHASE_CHAIN_LOG_LEVEL" envDefault:"info"`
	// LogFormat selects the slog handler (json or text).
	LogFormat string `env:"PURCHASE_CHAIN_LOG_FORMAT" envDefault:"json"`
	// Lang selects report language for templates.
	Lang string `env:"PURCHASE_CHAIN_LANG" envDefault:"en"`
}

// Load parses environment variables into Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	APIBaseURL     string        `env:"EXPERIENCES_API_URL"`
	RequestTimeout time.Duration `env:"EXPERIENCES_REQUEST_TIMEOUT"`
	DBPath         string        `env:"EXPERIENCES_DB_PATH"`
	LogLevel       string        `env:"EXPERIENCES_LOG_LEVEL"`
}

func parseEnv(cfg *Config) error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	overlay(cfg, Config(ec))
	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/experiences/internal/flagx"
	"github.com/dmitrijs2005/experiences/internal/timex"
)

// JSONConfig is the on-disk shape of the config file.
type JSONConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DBPath         string         `json:"db_path"`
	LogLevel       string         `json:"log_level"`
}

// parseJSON overlays cfg with the file named by -c/-config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(cfg, Config{
		APIBaseURL:     jc.APIBaseURL,
		RequestTimeout: jc.RequestTimeout.Duration,
		DBPath:         jc.DBPath,
		LogLevel:       jc.LogLevel,
	})
	return nil
}

// overlay copies the non-zero fields of src into dst.
func overlay(dst *Config, src Config) {
	if src.APIBaseURL != "" {
		dst.APIBaseURL = src.APIBaseURL
	}
	if src.RequestTimeout > 0 {
		dst.RequestTimeout = src.RequestTimeout
	}
	if src.DBPath != "" {
		dst.DBPath = src.DBPath
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

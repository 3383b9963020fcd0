// Package config loads fieldplan settings from defaults, an optional YAML
// file, FIELDPLAN_* environment variables, and flag overrides, in that order.
package config

import (
	"time"
)

const (
	// DefaultEndpoint is the task-plan service the dashboard reads from.
	DefaultEndpoint = "https://lp8vj9qov4.execute-api.us-east-1.amazonaws.com/prod/task-plan"

	// DefaultFile is looked up in the working directory when no --config is given.
	DefaultFile = ".fieldplan.yaml"

	envPrefix = "FIELDPLAN_"
)

// Config is the resolved runtime configuration.
type Config struct {
	Endpoint string        `koanf:"endpoint" validate:"required,http_url"`
	Timeout  time.Duration `koanf:"timeout" validate:"gt=0"`
	Retries  int           `koanf:"retries" validate:"min=0,max=5"`
	Theme    string        `koanf:"theme" validate:"oneof=light dark"`
	Log      LogConfig     `koanf:"log"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
	// File receives log output while the TUI owns the terminal. Empty discards it.
	File string `koanf:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Endpoint: DefaultEndpoint,
		Timeout:  30 * time.Second,
		Retries:  0,
		Theme:    "light",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// envKeys maps FIELDPLAN_* variables to config paths.
var envKeys = map[string]string{
	envPrefix + "ENDPOINT":  "endpoint",
	envPrefix + "TIMEOUT":   "timeout",
	envPrefix + "RETRIES":   "retries",
	envPrefix + "THEME":     "theme",
	envPrefix + "LOG_LEVEL": "log.level",
	envPrefix + "LOG_JSON":  "log.json",
	envPrefix + "LOG_FILE":  "log.file",
}

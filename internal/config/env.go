package config

import (
	"os"
	"strings"
)

// Environment variables that override the config file.
const (
	EnvOutputFormat = "POOLHEAT_OUTPUT_FORMAT"
	EnvLogLevel     = "POOLHEAT_LOG_LEVEL"
	EnvLogFormat    = "POOLHEAT_LOG_FORMAT"
	EnvProjectDir   = "POOLHEAT_PROJECT_DIR"
)

// ApplyEnvOverrides applies POOLHEAT_* environment variables on top of c.
// Empty variables are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvOutputFormat)); v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
}

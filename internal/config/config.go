// Package config provides configuration helpers for go-pathsense commands.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default runtime configuration.
const (
	DefaultMonitorPort = "8090"
	DefaultTickHz      = 30
	DefaultLogLevel    = "info"
)

// Config holds runtime settings for a navigation session.
// Zero values are replaced with defaults by Load.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// TickHz is the sensor tick rate the host loop runs at.
	TickHz int `yaml:"tick_hz"`

	// MonitorPort is the TCP port for the web monitor. Empty disables it.
	MonitorPort string `yaml:"monitor_port"`

	// TracePath optionally points to a recorded depth trace to replay
	// instead of the synthetic walk.
	TracePath string `yaml:"trace"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogLevel:    DefaultLogLevel,
		TickHz:      DefaultTickHz,
		MonitorPort: DefaultMonitorPort,
	}
}

// Load reads a YAML config file, falling back to defaults for unset fields.
// An empty path returns Default() with env overrides applied.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.TickHz <= 0 {
		cfg.TickHz = DefaultTickHz
	}

	// Env overrides win over the file.
	if v := os.Getenv("PATHSENSE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PATHSENSE_MONITOR_PORT"); v != "" {
		cfg.MonitorPort = v
	}

	return cfg, nil
}

// ConfigPath returns the config file path from PATHSENSE_CONFIG.
// Falls back to the provided default if not set.
func ConfigPath(defaultPath string) string {
	if p := os.Getenv("PATHSENSE_CONFIG"); p != "" {
		return p
	}
	return defaultPath
}

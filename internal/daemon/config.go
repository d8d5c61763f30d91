// Package daemon manages the aura daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all daemon configuration.
type Config struct {
	Storage   StorageConfig   `toml:"storage"`
	API       APIConfig       `toml:"api"`
	Habit     HabitConfig     `toml:"habit"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	Logging   LoggingConfig   `toml:"logging"`
}

// StorageConfig controls where engine state lives.
type StorageConfig struct {
	Dir string `toml:"dir"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
}

// HabitConfig controls the retroactive-marking policy.
type HabitConfig struct {
	AllowRetroactive bool `toml:"allow_retroactive"`
	GracePeriodHours int  `toml:"grace_period_hours"`
}

// TelemetryConfig controls metrics exposure.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	homeDir := auraHome()
	return Config{
		Storage: StorageConfig{
			Dir: filepath.Join(homeDir, "data"),
		},
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        4770,
			CORSOrigins: []string{"*"},
		},
		Habit: HabitConfig{
			AllowRetroactive: true,
			GracePeriodHours: 24,
		},
		Telemetry: TelemetryConfig{
			Prometheus: false,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir, "aura.log"),
		},
	}
}

// LoadConfig reads config from ~/.aura/config.toml, falling back to defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(auraHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Habit.GracePeriodHours < 0 {
		return cfg, fmt.Errorf("habit.grace_period_hours must not be negative")
	}

	return cfg, nil
}

// SaveConfig writes the config to ~/.aura/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(auraHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// auraHome returns the aura data directory.
func auraHome() string {
	if env := os.Getenv("AURA_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".aura")
}

// AuraHome is exported for use by other packages.
func AuraHome() string {
	return auraHome()
}

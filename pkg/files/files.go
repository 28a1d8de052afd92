package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	ForecourtDir   = ".forecourt"
	ConfigFilename = "config.yaml"
	LogFilename    = "forecourt.log"
)

// Config is the client-side configuration: where the backend lives and
// how requests behave. The settings document itself is owned by the
// backend; this file only configures transport.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
}

// BackendConfig points the client at the back-office REST service.
type BackendConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DefaultConfig returns the configuration written by `forecourt init`.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:        "http://localhost:9080",
			TimeoutSeconds: 15,
		},
	}
}

// InitProjectStructure creates the .forecourt directory and a default
// config file if one does not exist yet.
func InitProjectStructure() error {
	if err := os.MkdirAll(ForecourtDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ForecourtDir, err)
	}

	configPath := filepath.Join(ForecourtDir, ConfigFilename)
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}
	return WriteConfig(DefaultConfig())
}

// ReadConfig loads .forecourt/config.yaml. A missing file or missing
// fields fall back to defaults.
func ReadConfig() (*Config, error) {
	configPath := filepath.Join(ForecourtDir, ConfigFilename)

	content, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	if config.Backend.BaseURL == "" {
		config.Backend.BaseURL = DefaultConfig().Backend.BaseURL
	}
	if config.Backend.TimeoutSeconds <= 0 {
		config.Backend.TimeoutSeconds = DefaultConfig().Backend.TimeoutSeconds
	}
	return config, nil
}

// WriteConfig saves the configuration to .forecourt/config.yaml.
func WriteConfig(config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(ForecourtDir, ConfigFilename)
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", configPath, err)
	}
	return nil
}

// LogPath returns where the client writes its log file.
func LogPath() string {
	return filepath.Join(ForecourtDir, LogFilename)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	// CLI
	CLI struct {
		BaseURL        string `toml:"base_url"`        // Base URL of the scanner API
		RequestTimeout int    `toml:"request_timeout"` // Client-side HTTP timeout in seconds (0 = none)
		LogDir         string `toml:"log_dir"`
	} `toml:"cli"`

	// Web
	Web struct {
		Host string `toml:"host"`
		Port int    `toml:"port"`
	} `toml:"web"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.CLI.BaseURL = "http://localhost:5000" // scanner API dev server
	cfg.CLI.RequestTimeout = 0
	cfg.CLI.LogDir = "tmp"
	cfg.Web.Host = "0.0.0.0"
	cfg.Web.Port = 8080
	return cfg
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, ".config", "scan-viewer")
	return filepath.Join(configDir, "config.toml"), nil
}

// Load reads configuration from ~/.config/scan-viewer/config.toml
// Creates the file with defaults if it doesn't exist
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from path, creating it with defaults if missing.
func LoadFrom(configPath string) (*Config, error) {
	configPath, err := expandHome(configPath)
	if err != nil {
		return nil, err
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveTo(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		applyEnv(cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Merge with defaults for any missing values
	defaultCfg := DefaultConfig()
	if cfg.CLI.BaseURL == "" {
		cfg.CLI.BaseURL = defaultCfg.CLI.BaseURL
	}
	if cfg.CLI.LogDir == "" {
		cfg.CLI.LogDir = defaultCfg.CLI.LogDir
	}
	if cfg.Web.Host == "" {
		cfg.Web.Host = defaultCfg.Web.Host
	}
	if cfg.Web.Port == 0 {
		cfg.Web.Port = defaultCfg.Web.Port
	}

	applyEnv(&cfg)
	return &cfg, nil
}

// applyEnv overrides values from the environment (useful for Docker).
// Overrides are never written back to the file.
func applyEnv(cfg *Config) {
	if baseURL := os.Getenv("SCANNER_BASE_URL"); baseURL != "" {
		cfg.CLI.BaseURL = baseURL
	}
}

// Save writes the configuration to the config file
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes the configuration to path, creating parent directories.
func SaveTo(configPath string, cfg *Config) error {
	configPath, err := expandHome(configPath)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// expandHome expands a leading ~ in path
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return strings.Replace(path, "~", homeDir, 1), nil
}

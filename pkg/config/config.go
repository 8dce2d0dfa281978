package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the biao tool configuration
type Config struct {
	Git       GitConfig      `yaml:"git"`
	Templates TemplateConfig `yaml:"templates"`
	Apply     ApplyConfig    `yaml:"apply"`
}

// GitConfig controls how the repository is resolved
type GitConfig struct {
	// Remote is the git remote to read the GitHub URL from. Defaults to
	// origin when empty.
	Remote string `yaml:"remote"`
}

// TemplateConfig controls template discovery
type TemplateConfig struct {
	// Dirs are extra template directories searched after the user
	// directory and before the system directory.
	Dirs []string `yaml:"dirs"`
}

// ApplyConfig carries defaults for the apply command
type ApplyConfig struct {
	// ConfigFile overrides the default labels.toml file name.
	ConfigFile string `yaml:"config_file"`
	// SkipExisting makes --skip-existing the default for every run.
	SkipExisting bool `yaml:"skip_existing"`
}

// LoadConfig loads configuration from the default location
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadConfigFromPath(configPath)
}

// LoadConfigFromPath loads configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil // Return empty config if file doesn't exist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfigToPath saves configuration to a specific path
func (c *Config) SaveConfigToPath(path string) error {
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".biao", "config.yaml"), nil
}

// Remote returns the configured git remote name, defaulting to origin.
func (c *Config) Remote() string {
	if c.Git.Remote != "" {
		return c.Git.Remote
	}
	return "origin"
}

// DefaultConfigFile returns the default apply config file name.
func (c *Config) DefaultConfigFile() string {
	if c.Apply.ConfigFile != "" {
		return c.Apply.ConfigFile
	}
	return "labels.toml"
}

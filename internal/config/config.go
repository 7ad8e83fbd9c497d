// Package config manages YAML-based configuration and CLI flags for the
// backend, including the persisted workspace path.
package config

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the backend.
type Config struct {
	// Workspace is the directory holding the user's documents. Empty
	// until the user picks one.
	Workspace string `yaml:"workspace,omitempty"`

	Port    int    `yaml:"port"`
	Pattern string `yaml:"pattern"`
	Watch   bool   `yaml:"watch"`

	// Internal: path to config file for saving
	configPath string
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Port:    8765,
		Pattern: "*.inkfinite.json",
		Watch:   true,
	}
}

// GetConfigDir returns the config directory path.
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/inkfinite"
	}
	return filepath.Join(home, ".config", "inkfinite")
}

// GetConfigPath returns the full path to the config file.
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// Load loads configuration from file and command line flags.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	workspace := flag.String("workspace", "", "Workspace directory holding documents")
	port := flag.Int("port", 0, "HTTP server port")
	watch := flag.Bool("watch", true, "Enable workspace watching")
	configFile := flag.String("config", "", "Configuration file path")

	flag.Parse()

	// Determine config file path
	var cfgPath string
	if *configFile != "" {
		cfgPath = *configFile
	} else {
		globalConfig := GetConfigPath()
		if _, err := os.Stat(globalConfig); err == nil {
			cfgPath = globalConfig
		}
	}

	if cfgPath != "" {
		if err := cfg.loadFromFile(cfgPath); err != nil && *configFile != "" {
			// Only return error if user explicitly specified config file
			return nil, err
		}
		cfg.configPath = cfgPath
	} else {
		cfg.configPath = GetConfigPath()
	}

	// Command line flags override config file (only if explicitly set)
	if *workspace != "" {
		absPath, err := filepath.Abs(*workspace)
		if err != nil {
			absPath = *workspace
		}
		cfg.Workspace = absPath
	}
	if *port != 0 {
		cfg.Port = *port
	}
	cfg.Watch = *watch

	if cfg.Pattern == "" {
		cfg.Pattern = DefaultConfig().Pattern
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Save saves the current configuration to the config file.
func (c *Config) Save() error {
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	// Copy without internal fields for saving
	saveConfig := struct {
		Workspace string `yaml:"workspace,omitempty"`
		Port      int    `yaml:"port"`
		Pattern   string `yaml:"pattern"`
		Watch     bool   `yaml:"watch"`
	}{
		Workspace: c.Workspace,
		Port:      c.Port,
		Pattern:   c.Pattern,
		Watch:     c.Watch,
	}

	data, err := yaml.Marshal(saveConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(c.configPath, data, 0644)
}

// SetWorkspace records a newly picked workspace directory and persists it.
func (c *Config) SetWorkspace(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	c.Workspace = absPath
	return c.Save()
}

// GetConfigFilePath returns the path to the config file.
func (c *Config) GetConfigFilePath() string {
	return c.configPath
}

// SetConfigFilePath overrides where Save writes the config file.
func (c *Config) SetConfigFilePath(path string) {
	c.configPath = path
}

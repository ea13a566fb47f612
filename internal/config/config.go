package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for jsontree
type Config struct {
	Render RenderConfig `yaml:"render"`
	Dev    DevConfig    `yaml:"dev"`
}

// RenderConfig controls how a parsed value tree is displayed
type RenderConfig struct {
	Indent   int  `yaml:"indent"`
	SortKeys bool `yaml:"sort_keys"`
	// MaxDepth elides arrays and objects nested deeper than this many
	// levels; 0 means no limit.
	MaxDepth int `yaml:"max_depth"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Indent:   2,
			SortKeys: true,
			MaxDepth: 0,
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsontree.yml", ".jsontree.yaml", "jsontree.yml", "jsontree.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

func (c *Config) validate() error {
	if c.Render.Indent < 0 {
		return fmt.Errorf("render.indent must not be negative, got %d", c.Render.Indent)
	}
	if c.Render.MaxDepth < 0 {
		return fmt.Errorf("render.max_depth must not be negative, got %d", c.Render.MaxDepth)
	}
	return nil
}

// LoadConfigWithCLI loads config with CLI argument precedence. CLI values
// override the config file only when they differ from the defaults.
func LoadConfigWithCLI(configPath string, cliIndent int, cliNoSort bool, cliMaxDepth int) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliIndent != 2 {
		cfg.Render.Indent = cliIndent
	}
	if cliNoSort {
		cfg.Render.SortKeys = false
	}
	if cliMaxDepth != 0 {
		cfg.Render.MaxDepth = cliMaxDepth
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DataDirEnv overrides the data directory; used mainly by tests and scripts.
const DataDirEnv = "CREWDECK_DATA_DIR"

// Config represents the application configuration
type Config struct {
	// DataDir holds the database and log files. Defaults to ~/.crewdeck.
	DataDir string `yaml:"data_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Theme colors the CLI's human-readable output.
	Theme Theme `yaml:"theme"`
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist or can't be located.
func Load() (*Config, error) {
	config := Default()

	configPath, err := configPath()
	if err != nil {
		return applyEnv(config), nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return applyEnv(config), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if config.DataDir == "" {
		config.DataDir = Default().DataDir
	}
	if config.LogLevel == "" {
		config.LogLevel = Default().LogLevel
	}
	config.Theme.mergeDefaults()

	return applyEnv(config), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	dataDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".crewdeck")
	}
	return &Config{
		DataDir:  dataDir,
		LogLevel: "info",
		Theme:    DefaultTheme(),
	}
}

// DatabasePath is the location of the blob store database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "crewdeck.db")
}

// LogPath is the location of the application log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "logs", "crewdeck.log")
}

func applyEnv(c *Config) *Config {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		c.DataDir = dir
	}
	return c
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "crewdeck", "config.yaml"), nil
}

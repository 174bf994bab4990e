package domain

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the local configuration file.
const ConfigFileName = ".taskpath.toml"

// GlobalConfigFileName is the name of the global configuration file.
const GlobalConfigFileName = "config.toml"

// Config holds the application configuration.
type Config struct {
	Store   StoreConfig   `toml:"store"`
	Log     LogConfig     `toml:"log"`
	Imagery ImageryConfig `toml:"imagery"`
}

// StoreConfig configures task persistence.
type StoreConfig struct {
	// Path to the tasks JSON file. Empty means <dataDir>/tasks.json.
	Path string `toml:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Default is info.
	Level string `toml:"level"`
}

// ImageryConfig configures the external image-lookup service.
type ImageryConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

// NewDefaultConfig returns the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// DataDir returns the taskpath data directory: $TASKPATH_DIR if set,
// otherwise $XDG_DATA_HOME/taskpath (falling back to ~/.local/share/taskpath).
func DataDir() string {
	if dir := os.Getenv("TASKPATH_DIR"); dir != "" {
		return dir
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ".taskpath"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "taskpath")
}

// GlobalConfigDir returns the global config directory:
// $XDG_CONFIG_HOME/taskpath (falling back to ~/.config/taskpath).
func GlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskpath")
}

// StorePath resolves the tasks file path for the given data directory.
func (c *Config) StorePath(dataDir string) string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return filepath.Join(dataDir, "tasks.json")
}

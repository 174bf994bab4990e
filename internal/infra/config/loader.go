// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"taskpath/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // Directory searched for .taskpath.toml (usually the cwd)
	globalConfDir string // Path to the global config directory
}

// NewLoader creates a new Loader.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: domain.GlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// Load returns the merged configuration. The local config takes precedence
// over the global one, which takes precedence over defaults. Missing files
// are not an error.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(filepath.Join(l.globalConfDir, domain.GlobalConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	local, err := l.loadFile(filepath.Join(l.localDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	return base, nil
}

// loadFile parses a single TOML config file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-empty fields of over onto base.
func mergeConfigs(base, over *domain.Config) *domain.Config {
	merged := *base
	if over.Store.Path != "" {
		merged.Store.Path = over.Store.Path
	}
	if over.Log.Level != "" {
		merged.Log.Level = over.Log.Level
	}
	if over.Imagery.BaseURL != "" {
		merged.Imagery.BaseURL = over.Imagery.BaseURL
	}
	if over.Imagery.APIKey != "" {
		merged.Imagery.APIKey = over.Imagery.APIKey
	}
	return &merged
}

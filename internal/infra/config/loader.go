// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/okigami/repoctl/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	ctlDir        string // path to .git/repoctl directory
	globalConfDir string // path to global config directory (e.g., ~/.config/repoctl)
}

// NewLoader creates a new Loader.
func NewLoader(ctlDir string) *Loader {
	return &Loader{
		ctlDir:        ctlDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global
// config directory. This is useful for testing.
func NewLoaderWithGlobalDir(ctlDir, globalConfDir string) *Loader {
	return &Loader{
		ctlDir:        ctlDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalCtlDir(configHome)
}

// Load returns the merged configuration (repo + global).
// Repository config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	repoPath := filepath.Join(l.ctlDir, domain.ConfigFileName)
	repo, err := l.loadFile(repoPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if repo != nil {
		base = mergeConfigs(base, repo)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadFile reads and parses one TOML config file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from known config dirs
	if err != nil {
		return nil, err
	}
	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-zero values of overlay onto base.
// Booleans are ORed: a default enabled in either scope stays enabled.
func mergeConfigs(base, overlay *domain.Config) *domain.Config {
	merged := *base
	if overlay.Remote != "" {
		merged.Remote = overlay.Remote
	}
	merged.Release.Draft = base.Release.Draft || overlay.Release.Draft
	merged.Release.GenerateNotes = base.Release.GenerateNotes || overlay.Release.GenerateNotes
	if overlay.Runs.Limit > 0 {
		merged.Runs.Limit = overlay.Runs.Limit
	}
	if overlay.Log.Level != "" {
		merged.Log.Level = overlay.Log.Level
	}
	return &merged
}

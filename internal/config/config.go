// Package config loads and saves the per-user configuration:
// default mode, default sort order and named presets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Querulantenkind/rnm/pkg/types"
)

// Config is the persisted application configuration.
type Config struct {
	DefaultMode types.RenameMode        `yaml:"default_mode"`
	DefaultSort types.SortOrder         `yaml:"default_sort"`
	Presets     map[string]types.Preset `yaml:"presets"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultMode: types.ModeSearchReplace,
		DefaultSort: types.SortByName,
		Presets:     make(map[string]types.Preset),
	}
}

// Path resolves the per-user config file location. An error means no
// user config directory is available; callers degrade to defaults.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(configDir, "rnm", "config.yaml"), nil
}

// Load reads the user config, returning defaults when the file or
// the config directory does not exist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path, returning
// defaults when it is absent.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if cfg.DefaultMode == "" {
		cfg.DefaultMode = types.ModeSearchReplace
	}
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = types.SortByName
	}
	if cfg.Presets == nil {
		cfg.Presets = make(map[string]types.Preset)
	}

	return cfg, nil
}

// Save writes the config to the per-user location. Without a
// resolvable config directory this is a no-op.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return nil
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path, creating parent
// directories as needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// AddPreset inserts or replaces a preset under its name.
func (c *Config) AddPreset(preset types.Preset) {
	if c.Presets == nil {
		c.Presets = make(map[string]types.Preset)
	}
	c.Presets[preset.Name] = preset
}

// RemovePreset deletes a preset, reporting whether it existed.
func (c *Config) RemovePreset(name string) bool {
	if _, ok := c.Presets[name]; !ok {
		return false
	}
	delete(c.Presets, name)
	return true
}

// GetPreset looks up a preset by name.
func (c *Config) GetPreset(name string) (types.Preset, bool) {
	p, ok := c.Presets[name]
	return p, ok
}

// ListPresets returns preset names in sorted order.
func (c *Config) ListPresets() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Querulantenkind/rnm/pkg/types"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, types.ModeSearchReplace, cfg.DefaultMode)
	assert.Equal(t, types.SortByName, cfg.DefaultSort)
	assert.Empty(t, cfg.Presets)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.DefaultMode = types.ModeUppercase
	cfg.DefaultSort = types.SortByModified
	cfg.AddPreset(types.Preset{
		Name:    "my-preset",
		Mode:    types.ModeSearchReplace,
		Search:  "old",
		Replace: "new",
	})

	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, types.ModeUppercase, loaded.DefaultMode)
	assert.Equal(t, types.SortByModified, loaded.DefaultSort)

	p, ok := loaded.GetPreset("my-preset")
	require.True(t, ok)
	assert.Equal(t, "old", p.Search)
	assert.Equal(t, "new", p.Replace)
	assert.Equal(t, types.ModeSearchReplace, p.Mode)
}

func TestLoadFromInvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml ["), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestPresetManagement(t *testing.T) {
	cfg := DefaultConfig()

	cfg.AddPreset(types.Preset{Name: "b", Mode: types.ModeRegex})
	cfg.AddPreset(types.Preset{Name: "a", Mode: types.ModeLowercase})

	assert.Equal(t, []string{"a", "b"}, cfg.ListPresets())

	p, ok := cfg.GetPreset("b")
	require.True(t, ok)
	assert.Equal(t, types.ModeRegex, p.Mode)

	assert.True(t, cfg.RemovePreset("b"))
	assert.False(t, cfg.RemovePreset("b"))
	_, ok = cfg.GetPreset("b")
	assert.False(t, ok)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomgrid/grid"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.ShowPlaceholders)
	assert.Equal(t, 3, cfg.SwipeThreshold)
	assert.Equal(t, 250, cfg.TickMillis)
	assert.Empty(t, cfg.Scenario)
}

func TestCatalogFallsBackOnInvalidCustom(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomLayouts = []grid.LayoutDefinition{
		{Columns: 0, Rows: 1, MinTiles: 1, MaxTiles: 1},
	}

	got := cfg.Catalog()
	assert.Equal(t, grid.DefaultCatalog(), got)
}

func TestCatalogUsesValidCustom(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomLayouts = []grid.LayoutDefinition{
		{Columns: 1, Rows: 1, MinTiles: 1, MaxTiles: 1},
		{Columns: 2, Rows: 2, MinTiles: 2, MaxTiles: 4},
	}

	got := cfg.Catalog()
	require.Len(t, got, 2)
	assert.Equal(t, "2x2", got[1].DisplayName())
}

func TestLoadConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// First load creates the default config on disk.
	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	configPath, err := GetConfigPath()
	require.NoError(t, err)
	_, err = os.Stat(configPath)
	require.NoError(t, err)

	cfg.Scenario = "standup.json"
	cfg.SwipeThreshold = 5
	require.NoError(t, SaveConfig(cfg))

	reloaded := LoadConfig()
	assert.Equal(t, "standup.json", reloaded.Scenario)
	assert.Equal(t, 5, reloaded.SwipeThreshold)
}

func TestLoadConfigDegradesOnGarbage(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	configPath, err := GetConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o755))
	require.NoError(t, os.WriteFile(configPath, []byte("{broken"), 0o644))

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigSanitizesBadValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	configPath, err := GetConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o755))
	require.NoError(t, os.WriteFile(configPath,
		[]byte(`{"swipe_threshold": 0, "tick_ms": -10}`), 0o644))

	cfg := LoadConfig()
	assert.Equal(t, 3, cfg.SwipeThreshold)
	assert.Equal(t, 250, cfg.TickMillis)
}

func TestFileLock(t *testing.T) {
	dir := t.TempDir()
	lock := NewFileLock(filepath.Join(dir, "config.json"))

	require.NoError(t, lock.Lock())
	assert.Error(t, lock.Lock(), "double lock must fail")
	require.NoError(t, lock.Unlock())

	// Unlock when not held is a no-op.
	assert.NoError(t, lock.Unlock())

	require.NoError(t, lock.RLock())
	require.NoError(t, lock.Unlock())
}

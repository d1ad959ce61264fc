package review

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, "results", cfg.OutputDir)
	assert.Equal(t, "annotated_", cfg.OutputPrefix)
	assert.Equal(t, 0, cfg.StartRow)
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	in := Config{
		OutputDir:    "out",
		OutputPrefix: "reviewed_",
		LastFile:     "/data/batch7.csv",
		StartRow:     12,
	}
	require.NoError(t, SaveConfig(path, in))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "reviewed_", cfg.OutputPrefix)
	assert.Equal(t, "/data/batch7.csv", cfg.LastFile)
	assert.Equal(t, 12, cfg.StartRow)
	assert.Greater(t, cfg.WindowWidth, float32(0))
}

func TestConfigApplyDefaultsClampsNegativeStartRow(t *testing.T) {
	cfg := Config{StartRow: -3}
	cfg.ApplyDefaults()
	assert.Equal(t, 0, cfg.StartRow)
}

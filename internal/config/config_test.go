package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Contains(t, cfg.Crops, "corn")
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
clock:
  seconds_per_ten_minutes: 2
stamina:
  max: 150
  tool_cost: 5
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Clock.SecondsPerTenMinutes)
	assert.Equal(t, 150, cfg.Stamina.Max)
	assert.Equal(t, 5, cfg.Stamina.ToolCost)

	// Untouched sections keep their compiled-in values.
	assert.Equal(t, Default().Fade.Seconds, cfg.Fade.Seconds)
	assert.Equal(t, Default().Crops["turnip"], cfg.Crops["turnip"])
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
inventory:
  slots: 0
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

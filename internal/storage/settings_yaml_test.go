package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kegeltoday/internal/core/model"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

func TestSaveLoadSettings(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "KegelToday")
	settings := model.DefaultSettings()
	settings.PresetID = "hard"
	settings.SoundEnabled = false
	settings.TickCues = false
	settings.Custom = model.SessionConfig{WorkSeconds: 6, RestSeconds: 3, TotalReps: 7}

	require.NoError(t, SaveSettings(dir, settings))

	loaded, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
	assert.Equal(t, settings.Custom, loaded.SessionConfig())
}

func TestLoadSettingsIgnoresInvalidValues(t *testing.T) {
	dir := t.TempDir()
	content := "preset: extreme\nwork_seconds: 5\nrest_seconds: 5\ntotal_reps: -2\nhaptics: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(content), 0o644))

	settings, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPresetID, settings.PresetID)
	assert.False(t, settings.HasCustom())
	assert.False(t, settings.HapticsEnabled)
	assert.True(t, settings.SoundEnabled)
}

func TestLoadSettingsBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte("preset: [unclosed"), 0o644))

	settings, err := LoadSettings(dir)
	assert.Error(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)
}

package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kegeltoday/internal/core/model"
)

func TestParseCustom(t *testing.T) {
	config, err := parseCustom("", " ", "")
	require.NoError(t, err)
	assert.Equal(t, model.SessionConfig{}, config)

	config, err = parseCustom("6", "4", "9")
	require.NoError(t, err)
	assert.Equal(t, model.SessionConfig{WorkSeconds: 6, RestSeconds: 4, TotalReps: 9}, config)

	_, err = parseCustom("6", "", "9")
	assert.ErrorIs(t, err, model.ErrInvalidConfig)

	_, err = parseCustom("6", "4", "0")
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
}

func TestPresetOptionsRoundTrip(t *testing.T) {
	options := presetOptions()
	require.Len(t, options, len(model.Presets))
	for index, option := range options {
		assert.Equal(t, model.Presets[index].ID, presetIDForOption(option))
	}
	assert.Equal(t, model.DefaultPresetID, presetIDForOption("unknown"))
	assert.Equal(t, model.ThemeDark, themeForOption(themeLabels[model.ThemeDark]))
	assert.Equal(t, model.ThemeAuto, themeForOption("unknown"))
}

func TestWindowSave(t *testing.T) {
	app := test.NewTempApp(t)

	var saved model.Settings
	var savedTheme model.ThemeMode
	calls := 0
	prefs := New(app, model.DefaultSettings(), model.ThemeAuto, func(settings model.Settings, mode model.ThemeMode) {
		saved = settings
		savedTheme = mode
		calls++
	})

	hard, ok := model.PresetByID("hard")
	require.True(t, ok)
	prefs.preset.SetSelected(presetOption(hard))
	test.Tap(prefs.sound)
	prefs.theme.SetSelected(themeLabels[model.ThemeLight])
	prefs.handleSave()

	require.Equal(t, 1, calls)
	assert.Equal(t, "hard", saved.PresetID)
	assert.False(t, saved.SoundEnabled)
	assert.True(t, saved.HapticsEnabled)
	assert.False(t, saved.HasCustom())
	assert.Equal(t, model.ThemeLight, savedTheme)
	assert.True(t, prefs.ticks.Disabled())
}

func TestWindowRejectsIncompleteCustom(t *testing.T) {
	app := test.NewTempApp(t)

	calls := 0
	prefs := New(app, model.DefaultSettings(), model.ThemeAuto, func(model.Settings, model.ThemeMode) { calls++ })
	prefs.work.SetText("7")
	prefs.handleSave()

	assert.Equal(t, 0, calls)
	assert.True(t, prefs.errorLabel.Visible())
	assert.Contains(t, prefs.errorLabel.Text, "relax seconds")
}

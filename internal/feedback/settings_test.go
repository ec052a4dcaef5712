package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kegeltoday/internal/core/model"
)

func TestOptionsFromSettings(t *testing.T) {
	settings := model.DefaultSettings()
	assert.Equal(t, Options{Sound: true, Haptics: true}, OptionsFromSettings(settings))

	settings.TickCues = false
	settings.HapticsEnabled = false
	assert.Equal(t, Options{Sound: true, Muted: []Cue{CueTick}}, OptionsFromSettings(settings))

	settings = model.DefaultSettings()
	settings.SoundEnabled = false
	options := OptionsFromSettings(settings)
	assert.False(t, options.Sound)
	assert.False(t, options.Haptics)
}

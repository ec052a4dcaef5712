package feedback

import "kegeltoday/internal/core/model"

// OptionsFromSettings maps user settings to emitter options.
func OptionsFromSettings(settings model.Settings) Options {
	options := Options{
		Sound:   settings.SoundEnabled,
		Haptics: settings.SoundEnabled && settings.HapticsEnabled,
	}
	if !settings.TickCues {
		options.Muted = append(options.Muted, CueTick)
	}
	return options
}

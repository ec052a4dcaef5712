package model

// ThemeMode selects how the presentation layer chooses light or dark colors.
type ThemeMode string

const (
	ThemeAuto  ThemeMode = "auto"
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ParseThemeMode returns the mode for a stored value, falling back to auto.
func ParseThemeMode(value string) (ThemeMode, bool) {
	switch ThemeMode(value) {
	case ThemeAuto, ThemeLight, ThemeDark:
		return ThemeMode(value), true
	default:
		return ThemeAuto, false
	}
}

// Settings defines editable user preferences.
type Settings struct {
	PresetID string

	// Custom overrides the preset when every field is set.
	Custom SessionConfig

	SoundEnabled   bool
	HapticsEnabled bool
	TickCues       bool
}

// DefaultSettings returns default settings for Kegel Today.
func DefaultSettings() Settings {
	return Settings{
		PresetID:       DefaultPresetID,
		SoundEnabled:   true,
		HapticsEnabled: true,
		TickCues:       true,
	}
}

// HasCustom reports whether a complete custom rhythm is configured.
func (settings Settings) HasCustom() bool {
	return settings.Custom.WorkSeconds > 0 && settings.Custom.RestSeconds > 0 && settings.Custom.TotalReps > 0
}

// SessionConfig converts settings to the config used for the next session.
func (settings Settings) SessionConfig() SessionConfig {
	if settings.HasCustom() {
		return settings.Custom
	}
	if preset, ok := PresetByID(settings.PresetID); ok {
		return preset.Config
	}
	preset, _ := PresetByID(DefaultPresetID)
	return preset.Config
}

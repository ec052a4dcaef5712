package model

// Preset is a named session rhythm offered to the user.
type Preset struct {
	ID          string
	Label       string
	Description string
	Config      SessionConfig
}

// DefaultPresetID is selected when nothing else is configured.
const DefaultPresetID = "normal"

// Presets lists the built-in rhythms from gentlest to hardest.
var Presets = []Preset{
	{
		ID:          "easy",
		Label:       "Beginner",
		Description: "An easy start to find the right muscles",
		Config:      SessionConfig{WorkSeconds: 3, RestSeconds: 5, TotalReps: 8},
	},
	{
		ID:          "normal",
		Label:       "Daily care",
		Description: "A little every day keeps you healthy",
		Config:      SessionConfig{WorkSeconds: 5, RestSeconds: 5, TotalReps: 10},
	},
	{
		ID:          "hard",
		Label:       "Challenge",
		Description: "Longer holds for the core, level up",
		Config:      SessionConfig{WorkSeconds: 8, RestSeconds: 4, TotalReps: 12},
	},
}

// PresetByID returns the preset with the given id.
func PresetByID(id string) (Preset, bool) {
	for _, preset := range Presets {
		if preset.ID == id {
			return preset, true
		}
	}
	return Preset{}, false
}

// PresetIDs returns the ids of all built-in presets in display order.
func PresetIDs() []string {
	ids := make([]string, 0, len(Presets))
	for _, preset := range Presets {
		ids = append(ids, preset.ID)
	}
	return ids
}

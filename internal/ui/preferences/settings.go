package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"kegeltoday/internal/core/model"
)

var themeLabels = map[model.ThemeMode]string{
	model.ThemeAuto:  "Auto (dark at night)",
	model.ThemeLight: "Light",
	model.ThemeDark:  "Dark",
}

func presetOptions() []string {
	options := make([]string, 0, len(model.Presets))
	for _, preset := range model.Presets {
		options = append(options, presetOption(preset))
	}
	return options
}

func presetOption(preset model.Preset) string {
	config := preset.Config
	return fmt.Sprintf("%s (%ds / %ds x %d)", preset.Label, config.WorkSeconds, config.RestSeconds, config.TotalReps)
}

func presetIDForOption(option string) string {
	for _, preset := range model.Presets {
		if presetOption(preset) == option {
			return preset.ID
		}
	}
	return model.DefaultPresetID
}

func themeOptions() []string {
	return []string{themeLabels[model.ThemeAuto], themeLabels[model.ThemeLight], themeLabels[model.ThemeDark]}
}

func themeForOption(option string) model.ThemeMode {
	for mode, label := range themeLabels {
		if label == option {
			return mode
		}
	}
	return model.ThemeAuto
}

// parseCustom reads the custom rhythm entries. All empty clears the custom
// rhythm; otherwise every field must be a positive integer.
func parseCustom(work, rest, reps string) (model.SessionConfig, error) {
	if strings.TrimSpace(work) == "" && strings.TrimSpace(rest) == "" && strings.TrimSpace(reps) == "" {
		return model.SessionConfig{}, nil
	}

	var config model.SessionConfig
	var ok bool
	if config.WorkSeconds, ok = parsePositiveInt(work); !ok {
		return model.SessionConfig{}, fmt.Errorf("%w: squeeze seconds must be a positive number", model.ErrInvalidConfig)
	}
	if config.RestSeconds, ok = parsePositiveInt(rest); !ok {
		return model.SessionConfig{}, fmt.Errorf("%w: relax seconds must be a positive number", model.ErrInvalidConfig)
	}
	if config.TotalReps, ok = parsePositiveInt(reps); !ok {
		return model.SessionConfig{}, fmt.Errorf("%w: reps must be a positive number", model.ErrInvalidConfig)
	}
	return config, nil
}

func formatCustom(value int) string {
	if value <= 0 {
		return ""
	}
	return strconv.Itoa(value)
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"kegeltoday/internal/core/model"
)

// SettingsFileName is the YAML settings file inside the config directory.
const SettingsFileName = "settings.yaml"

type yamlSettings struct {
	Preset      string `yaml:"preset"`
	WorkSeconds int    `yaml:"work_seconds,omitempty"`
	RestSeconds int    `yaml:"rest_seconds,omitempty"`
	TotalReps   int    `yaml:"total_reps,omitempty"`
	Sound       *bool  `yaml:"sound"`
	Haptics     *bool  `yaml:"haptics"`
	TickCues    *bool  `yaml:"tick_cues"`
}

// LoadSettings reads user preferences from YAML in configDir.
// If the file does not exist, default settings are returned.
func LoadSettings(configDir string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(filepath.Join(configDir, SettingsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML in configDir.
func SaveSettings(configDir string, settings model.Settings) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Preset:   settings.PresetID,
		Sound:    &settings.SoundEnabled,
		Haptics:  &settings.HapticsEnabled,
		TickCues: &settings.TickCues,
	}
	if settings.HasCustom() {
		fileData.WorkSeconds = settings.Custom.WorkSeconds
		fileData.RestSeconds = settings.Custom.RestSeconds
		fileData.TotalReps = settings.Custom.TotalReps
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Join(configDir, SettingsFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if _, ok := model.PresetByID(fileData.Preset); ok {
		settings.PresetID = fileData.Preset
	}

	custom := model.SessionConfig{
		WorkSeconds: fileData.WorkSeconds,
		RestSeconds: fileData.RestSeconds,
		TotalReps:   fileData.TotalReps,
	}
	if custom.WorkSeconds > 0 && custom.RestSeconds > 0 && custom.Validate() == nil {
		settings.Custom = custom
	}

	if fileData.Sound != nil {
		settings.SoundEnabled = *fileData.Sound
	}
	if fileData.Haptics != nil {
		settings.HapticsEnabled = *fileData.Haptics
	}
	if fileData.TickCues != nil {
		settings.TickCues = *fileData.TickCues
	}
}

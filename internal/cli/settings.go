package cli

import (
	"fmt"
	"strings"

	"kegeltoday/internal/core/model"
	"kegeltoday/internal/storage"
)

type SettingsCmd struct {
	Preset  string `help:"Default preset (easy, normal, hard). Clears a custom rhythm."`
	Work    int    `help:"Custom squeeze seconds." default:"-1"`
	Rest    int    `help:"Custom relax seconds." default:"-1"`
	Reps    int    `help:"Custom repetitions." default:"-1"`
	Sound   string `help:"Sound and haptic cues (on, off)."`
	Haptics string `help:"Vibration pulses (on, off)."`
	Ticks   string `help:"Countdown ticks (on, off)."`
	Theme   string `help:"Theme mode (auto, light, dark)."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings := ctx.Settings
	changed := false

	if c.Preset != "" {
		if _, ok := model.PresetByID(c.Preset); !ok {
			return fmt.Errorf("unknown preset %q", c.Preset)
		}
		settings.PresetID = c.Preset
		settings.Custom = model.SessionConfig{}
		changed = true
	}
	if c.Work >= 0 || c.Rest >= 0 || c.Reps >= 0 {
		custom := settings.SessionConfig()
		if c.Work >= 0 {
			custom.WorkSeconds = c.Work
		}
		if c.Rest >= 0 {
			custom.RestSeconds = c.Rest
		}
		if c.Reps >= 0 {
			custom.TotalReps = c.Reps
		}
		if err := custom.Validate(); err != nil {
			return err
		}
		if custom.WorkSeconds == 0 || custom.RestSeconds == 0 {
			return fmt.Errorf("%w: saved rhythms need squeeze and relax of at least 1s", model.ErrInvalidConfig)
		}
		settings.Custom = custom
		changed = true
	}
	for _, toggle := range []struct {
		name   string
		value  string
		target *bool
	}{
		{name: "sound", value: c.Sound, target: &settings.SoundEnabled},
		{name: "haptics", value: c.Haptics, target: &settings.HapticsEnabled},
		{name: "ticks", value: c.Ticks, target: &settings.TickCues},
	} {
		if toggle.value == "" {
			continue
		}
		enabled, err := parseSwitch(toggle.value)
		if err != nil {
			return fmt.Errorf("--%s: %w", toggle.name, err)
		}
		*toggle.target = enabled
		changed = true
	}

	if changed {
		if err := ctx.saveSettings(settings); err != nil {
			return err
		}
	}
	if c.Theme != "" {
		mode, ok := model.ParseThemeMode(c.Theme)
		if !ok {
			return fmt.Errorf("unknown theme mode %q", c.Theme)
		}
		if err := storage.SaveThemeMode(ctx.KV, mode); err != nil {
			return err
		}
	}

	c.print(ctx)
	return nil
}

func (c *SettingsCmd) print(ctx *Context) {
	settings := ctx.Settings
	config := settings.SessionConfig()
	rhythm := settings.PresetID
	if settings.HasCustom() {
		rhythm = "custom"
	}
	ctx.printf("rhythm:   %s (squeeze %ds, relax %ds, %d reps)\n", rhythm, config.WorkSeconds, config.RestSeconds, config.TotalReps)
	ctx.printf("sound:    %t\n", settings.SoundEnabled)
	ctx.printf("haptics:  %t\n", settings.HapticsEnabled)
	ctx.printf("ticks:    %t\n", settings.TickCues)
	ctx.printf("theme:    %s\n", storage.LoadThemeMode(ctx.KV))
	ctx.printf("settings: %s\n", ctx.ConfigDir)
}

func parseSwitch(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", value)
	}
}

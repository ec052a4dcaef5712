package cli

import (
	"kegeltoday/internal/core/model"
)

type PresetsCmd struct{}

func (c *PresetsCmd) Run(ctx *Context) error {
	active := ""
	if !ctx.Settings.HasCustom() {
		active = ctx.Settings.PresetID
	}

	for _, preset := range model.Presets {
		marker := " "
		if preset.ID == active {
			marker = "*"
		}
		config := preset.Config
		ctx.printf("%s %-7s %-11s squeeze %2ds  relax %2ds  x%-3d %s\n",
			marker, preset.ID, preset.Label, config.WorkSeconds, config.RestSeconds, config.TotalReps, preset.Description)
	}
	if ctx.Settings.HasCustom() {
		custom := ctx.Settings.Custom
		ctx.printf("* %-7s %-11s squeeze %2ds  relax %2ds  x%-3d\n",
			"custom", "Your rhythm", custom.WorkSeconds, custom.RestSeconds, custom.TotalReps)
	}
	return nil
}

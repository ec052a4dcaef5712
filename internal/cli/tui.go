package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"kegeltoday/internal/core/encourage"
	"kegeltoday/internal/core/model"
	"kegeltoday/internal/core/session"
	"kegeltoday/internal/feedback"
	"kegeltoday/internal/logger"
	"kegeltoday/internal/storage"
	"kegeltoday/internal/tui"
	"kegeltoday/internal/ui/theme"
)

type TuiCmd struct {
	Preset string `help:"Preset to run (easy, normal, hard). Prompts when omitted on a terminal."`
	Work   int    `help:"Squeeze seconds, overrides the preset." default:"-1"`
	Rest   int    `help:"Relax seconds, overrides the preset." default:"-1"`
	Reps   int    `help:"Repetitions, overrides the preset." default:"-1"`
}

// pickPreset asks which preset to run. Replaced in tests.
var pickPreset = promptPreset

func (c *TuiCmd) Run(ctx *Context) error {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	config, err := c.resolveConfig(ctx, interactive)
	if err != nil {
		return err
	}

	emitter := feedback.NewEmitter(
		feedback.NewSpeakerBackend(),
		feedback.NewBellVibrator(os.Stderr),
		feedback.OptionsFromSettings(ctx.Settings),
	)
	runner, err := session.New(config, session.Dependencies{
		Emitter:  emitter,
		Recorder: ctx.Progress,
		Selector: encourage.New(),
	}, session.Options{Now: ctx.Now})
	if err != nil {
		return err
	}
	defer runner.Cancel()

	dark := theme.IsDark(storage.LoadThemeMode(ctx.KV), ctx.Now())
	program := tea.NewProgram(tui.NewModel(runner, tui.Options{
		Dark:    dark,
		History: ctx.Progress.ListCompletions,
		Now:     ctx.Now,
	}), tea.WithAltScreen())

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	result, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	if result.Err() != nil {
		return result.Err()
	}

	if result.Finished() {
		ctx.printf("Awesome! Session recorded for %s.\n", storage.Today(ctx.Now()))
	} else {
		ctx.printf("Session stopped. Nothing was recorded.\n")
	}
	return nil
}

func (c *TuiCmd) resolveConfig(ctx *Context, interactive bool) (model.SessionConfig, error) {
	overridden := c.Work >= 0 || c.Rest >= 0 || c.Reps >= 0

	var config model.SessionConfig
	switch {
	case c.Preset != "":
		preset, ok := model.PresetByID(c.Preset)
		if !ok {
			return model.SessionConfig{}, fmt.Errorf("unknown preset %q", c.Preset)
		}
		config = preset.Config
	case !overridden && interactive:
		presetID, err := pickPreset(ctx.Settings.PresetID)
		if err != nil {
			return model.SessionConfig{}, err
		}
		preset, ok := model.PresetByID(presetID)
		if !ok {
			return model.SessionConfig{}, fmt.Errorf("unknown preset %q", presetID)
		}
		config = preset.Config
	default:
		config = ctx.Settings.SessionConfig()
	}

	if c.Work >= 0 {
		config.WorkSeconds = c.Work
	}
	if c.Rest >= 0 {
		config.RestSeconds = c.Rest
	}
	if c.Reps >= 0 {
		config.TotalReps = c.Reps
	}
	if err := config.Validate(); err != nil {
		return model.SessionConfig{}, err
	}
	logger.Debug("session config resolved", "work", config.WorkSeconds, "rest", config.RestSeconds, "reps", config.TotalReps)
	return config, nil
}

func promptPreset(defaultID string) (string, error) {
	choice := defaultID
	options := make([]huh.Option[string], 0, len(model.Presets))
	for _, preset := range model.Presets {
		config := preset.Config
		label := fmt.Sprintf("%s: squeeze %ds, relax %ds, %d reps", preset.Label, config.WorkSeconds, config.RestSeconds, config.TotalReps)
		options = append(options, huh.NewOption(label, preset.ID))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Choose today's rhythm").
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errors.New("no preset chosen")
		}
		return "", fmt.Errorf("choose preset: %w", err)
	}
	return choice, nil
}

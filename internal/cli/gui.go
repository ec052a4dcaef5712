package cli

import (
	"errors"

	"fyne.io/fyne/v2/app"

	"kegeltoday/internal/logger"
	"kegeltoday/internal/platform"
	"kegeltoday/internal/ui/gui"
	"kegeltoday/resources"
)

type GuiCmd struct{}

func (c *GuiCmd) Run(ctx *Context) error {
	guard, err := platform.AcquireSingleInstance(platform.AppName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("already running, activated existing window")
			ctx.printf("Kegel Today is already running.\n")
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.kegeltoday.app")
	fyneApp.SetIcon(resources.MustIcon(resources.Logo))

	controller := gui.New(fyneApp, gui.Config{
		ConfigDir: ctx.ConfigDir,
		Settings:  ctx.Settings,
		KV:        ctx.KV,
		Progress:  ctx.Progress,
		Now:       ctx.Now,
	})
	guard.SetOnActivate(controller.Show)

	logger.Info("desktop app started", "config_dir", ctx.ConfigDir)
	controller.Run()
	return nil
}

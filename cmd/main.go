package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"kegeltoday/internal/cli"
	"kegeltoday/internal/logger"
	"kegeltoday/internal/platform"
	"kegeltoday/internal/storage"
)

var version = "dev"

var CLI struct {
	cli.Globals

	Gui      cli.GuiCmd      `cmd:"" help:"Open the desktop coach." default:"1"`
	Tui      cli.TuiCmd      `cmd:"" help:"Run a session in the terminal."`
	History  cli.HistoryCmd  `cmd:"" help:"Show the consistency calendar."`
	Presets  cli.PresetsCmd  `cmd:"" help:"List session presets."`
	Settings cli.SettingsCmd `cmd:"" help:"Show or change settings."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("kegeltoday"),
		kong.Description("A guided daily pelvic floor exercise coach."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	configDir, err := platform.ConfigDir(CLI.ConfigDir)
	kctx.FatalIfErrorf(err)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}

	kv, err := storage.OpenSQLiteKV(filepath.Join(configDir, storage.DatabaseFileName))
	kctx.FatalIfErrorf(err)
	defer kv.Close()

	settings, err := storage.LoadSettings(configDir)
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}

	appCtx := cli.NewContext(configDir, kv, settings)
	if err := kctx.Run(appCtx); err != nil {
		logger.Error("command failed", "command", kctx.Command(), "error", err)
		kv.Close()
		kctx.FatalIfErrorf(err)
	}
}

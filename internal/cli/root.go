package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"kegeltoday/internal/core/model"
	"kegeltoday/internal/storage"
)

// Globals are flags shared by every command.
type Globals struct {
	Version   kong.VersionFlag `help:"Print version and exit."`
	ConfigDir string           `help:"Directory for settings, history and logs." type:"path" env:"KEGELTODAY_CONFIG_DIR"`
	Debug     bool             `help:"Log at debug level and mirror logs to stderr." env:"KEGELTODAY_DEBUG"`
}

// Context is passed to every command's Run method.
type Context struct {
	ConfigDir string
	Settings  model.Settings
	KV        storage.KV
	Progress  *storage.ProgressStore
	Now       func() time.Time
	Out       io.Writer
}

// NewContext opens the stores under configDir.
func NewContext(configDir string, kv storage.KV, settings model.Settings) *Context {
	return &Context{
		ConfigDir: configDir,
		Settings:  settings,
		KV:        kv,
		Progress:  storage.NewProgressStore(kv),
		Now:       time.Now,
		Out:       os.Stdout,
	}
}

func (ctx *Context) printf(format string, args ...any) {
	fmt.Fprintf(ctx.Out, format, args...)
}

func (ctx *Context) saveSettings(settings model.Settings) error {
	if err := storage.SaveSettings(ctx.ConfigDir, settings); err != nil {
		return err
	}
	ctx.Settings = settings
	return nil
}

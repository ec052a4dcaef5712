package cli

import (
	"fmt"
	"time"

	"kegeltoday/internal/core/calendar"
	"kegeltoday/internal/core/model"
	"kegeltoday/internal/storage"
	"kegeltoday/internal/tui"
	"kegeltoday/internal/ui/theme"
)

type HistoryCmd struct {
	Month string `help:"Month to show as YYYY-MM (default: current month)."`
	List  bool   `help:"Print completed days one per line instead of a calendar."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	completed := ctx.Progress.ListCompletions()
	if c.List {
		for _, day := range completed {
			ctx.printf("%s\n", day)
		}
		return nil
	}

	now := ctx.Now()
	year, month := now.Year(), now.Month()
	if c.Month != "" {
		parsed, err := time.ParseInLocation("2006-01", c.Month, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --month %q: expected YYYY-MM", c.Month)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	grid := calendar.Build(year, month, now, completed)
	dark := theme.IsDark(storage.LoadThemeMode(ctx.KV), now)
	ctx.printf("%s\n", tui.RenderMonth(grid, tui.NewStyles(dark)))

	streak := calendar.Streak(completed, now)
	status := "not done yet"
	if ctx.Progress.HasCompleted(model.DayID(now)) {
		status = "done"
	}
	ctx.printf("Today: %s, streak: %d, total: %d\n", status, streak, len(completed))
	return nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kegeltoday/internal/core/calendar"
)

// RenderMonth draws a Sunday-first month with completed days stamped.
func RenderMonth(month calendar.Month, styles Styles) string {
	var builder strings.Builder
	builder.WriteString(styles.Title.Render(month.Title()))
	builder.WriteString("\n")

	headers := make([]string, 0, len(calendar.Weekdays))
	for _, weekday := range calendar.Weekdays {
		headers = append(headers, styles.Muted.Render(fmt.Sprintf("%3s", weekday)))
	}
	builder.WriteString(strings.Join(headers, " "))
	builder.WriteString("\n")

	for _, week := range month.Weeks {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			cells = append(cells, renderCell(cell, styles))
		}
		builder.WriteString(strings.Join(cells, " "))
		builder.WriteString("\n")
	}

	switch month.Completed {
	case 0:
		builder.WriteString(styles.Muted.Render("No sessions yet this month"))
	case 1:
		builder.WriteString(styles.Muted.Render("1 day completed this month"))
	default:
		builder.WriteString(styles.Muted.Render(fmt.Sprintf("%d days completed this month", month.Completed)))
	}
	return builder.String()
}

func renderCell(cell calendar.Cell, styles Styles) string {
	if cell.Day == 0 {
		return "   "
	}
	text := fmt.Sprintf("%3d", cell.Day)
	var style lipgloss.Style
	switch {
	case cell.Completed:
		style = styles.Stamp
	case cell.Today:
		style = styles.Today
	default:
		style = styles.Day
	}
	if cell.Completed && cell.Today {
		style = style.Underline(true)
	}
	return style.Render(text)
}

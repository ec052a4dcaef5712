package calendar

import (
	"time"

	"kegeltoday/internal/core/model"
)

// Weekdays are the column headers of a month grid, Sunday first.
var Weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Cell is one slot of the month grid. Padding cells have Day 0.
type Cell struct {
	Day       int
	Date      string
	Completed bool
	Today     bool
}

// Month is a Sunday-first grid of weeks.
type Month struct {
	Year      int
	Month     time.Month
	Weeks     [][]Cell
	Completed int
}

// Title returns a heading such as "October 2026".
func (month Month) Title() string {
	return time.Date(month.Year, month.Month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")
}

// Build lays out a month and marks completed days and today.
func Build(year int, month time.Month, today time.Time, completed []string) Month {
	done := make(map[string]bool, len(completed))
	for _, day := range completed {
		done[day] = true
	}
	todayID := model.DayID(today)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	result := Month{Year: year, Month: month}
	week := make([]Cell, 0, 7)
	for i := 0; i < int(first.Weekday()); i++ {
		week = append(week, Cell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format(model.DayLayout)
		cell := Cell{
			Day:       day,
			Date:      date,
			Completed: done[date],
			Today:     date == todayID,
		}
		if cell.Completed {
			result.Completed++
		}
		week = append(week, cell)
		if len(week) == 7 {
			result.Weeks = append(result.Weeks, week)
			week = make([]Cell, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, Cell{})
		}
		result.Weeks = append(result.Weeks, week)
	}
	return result
}

// Current builds the month containing now.
func Current(now time.Time, completed []string) Month {
	local := now.Local()
	return Build(local.Year(), local.Month(), now, completed)
}

// Streak counts consecutive completed days ending today, or yesterday when
// today is not done yet.
func Streak(completed []string, today time.Time) int {
	done := make(map[string]bool, len(completed))
	for _, day := range completed {
		done[day] = true
	}
	cursor := today.Local()
	if !done[model.DayID(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	streak := 0
	for done[model.DayID(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

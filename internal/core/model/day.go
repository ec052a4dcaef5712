package model

import "time"

// DayLayout formats local calendar days used as completion keys.
const DayLayout = "2006-01-02"

// DayID returns the local day identifier of t.
func DayID(t time.Time) string {
	return t.Local().Format(DayLayout)
}

// ParseDayID parses a day identifier in the local time zone.
func ParseDayID(day string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, day, time.Local)
}

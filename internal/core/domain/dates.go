package domain

import (
	"fmt"
	"time"
)

// DayLayout is the calendar-day format used on the wire and in row metadata.
const DayLayout = "2006-01-02"

// DateOnly truncates t to midnight UTC of its UTC calendar day.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the half-open UTC window [start, end) covering the calendar day of t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := DateOnly(t)
	return start, start.AddDate(0, 0, 1)
}

// PreviousDay returns the calendar day before now, in UTC.
func PreviousDay(now time.Time) time.Time {
	return DateOnly(now).AddDate(0, 0, -1)
}

// ParseDay parses a YYYY-MM-DD string into a UTC date.
func ParseDay(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, expected YYYY-MM-DD: %w", s, err)
	}
	return d, nil
}

// FormatDay renders the UTC calendar day of t.
func FormatDay(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

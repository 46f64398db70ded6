package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// deadlineLayouts are the accepted timestamp formats, tried in order.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// ParseDeadline parses a raw deadline string. Date-only values resolve to
// the end of that calendar day, so an item due "2026-09-01" is not overdue
// until the day is over.
func ParseDeadline(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty deadline")
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	if d, err := time.Parse(dateLayout, raw); err == nil {
		return d.Add(24*time.Hour - time.Second), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized deadline format %q", raw)
}

// SameCalendarDay reports whether a and b fall on the same calendar day.
func SameCalendarDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

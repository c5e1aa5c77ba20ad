package core

import (
	"fmt"
	"time"
)

// Calendar helpers used by the month filter and summary calculations.
// All comparisons are by local calendar fields, not by instant, so records
// entered at any time of day land in the expected day/week/month buckets.

// SameDay reports whether a and b fall on the same calendar day
// (year, month and day all equal).
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameMonth reports whether a and b fall in the same calendar year+month,
// ignoring day and time of day.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// InMonth reports whether t falls in the given calendar year+month.
func InMonth(t time.Time, year int, month time.Month) bool {
	return t.Year() == year && t.Month() == month
}

// StartOfDay returns midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the first day of t's week, with Sunday as
// weekday zero. Crossing a month or year boundary is handled by AddDate.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// MonthLabel renders a year+month as "January 2026".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month, year)
}

package core

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 4, 5, 0, time.Local)
}

func TestSameDay(t *testing.T) {
	cases := []struct {
		a, b time.Time
		want bool
	}{
		{date(2026, 1, 10), time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local), true},
		{date(2026, 1, 10), date(2026, 1, 11), false},
		{date(2026, 1, 10), date(2026, 2, 10), false},
		// same day-of-year in a different year must not match
		{date(2026, 1, 10), date(2025, 1, 10), false},
	}
	for i, tc := range cases {
		if got := SameDay(tc.a, tc.b); got != tc.want {
			t.Fatalf("case %d: SameDay = %v, want %v", i, got, tc.want)
		}
	}
}

func TestInMonth(t *testing.T) {
	d := date(2026, 2, 28)
	if !InMonth(d, 2026, time.February) {
		t.Fatalf("expected in month")
	}
	if InMonth(d, 2026, time.March) || InMonth(d, 2025, time.February) {
		t.Fatalf("month match must compare both year and month")
	}
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		// Wed Jan 14 2026 -> Sun Jan 11 2026
		{date(2026, 1, 14), time.Date(2026, 1, 11, 0, 0, 0, 0, time.Local)},
		// Sunday is already the start of its week
		{date(2026, 1, 11), time.Date(2026, 1, 11, 0, 0, 0, 0, time.Local)},
		// week crossing a month boundary: Tue Apr 1 2025 -> Sun Mar 30 2025
		{date(2025, 4, 1), time.Date(2025, 3, 30, 0, 0, 0, 0, time.Local)},
		// week crossing a year boundary: Fri Jan 2 2026 -> Sun Dec 28 2025
		{date(2026, 1, 2), time.Date(2025, 12, 28, 0, 0, 0, 0, time.Local)},
	}
	for i, tc := range cases {
		got := StartOfWeek(tc.in)
		if !got.Equal(tc.want) {
			t.Fatalf("case %d: StartOfWeek(%v) = %v, want %v", i, tc.in, got, tc.want)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(2026, time.January); got != "January 2026" {
		t.Fatalf("got %q", got)
	}
}

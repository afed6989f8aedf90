package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// LayoutISO is the layout of focus-log keys.
const LayoutISO = "2006-01-02"

// Civil drops the clock and zone of t, keeping its calendar date. All dates
// handled by this package are civil dates: midnight UTC.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD key into a civil date.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(LayoutISO, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: invalid date %q: %w", v, err)
	}
	return t, nil
}

// FormatDate renders t as a focus-log key.
func FormatDate(t time.Time) string {
	return t.Format(LayoutISO)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddDays moves a civil date by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return Civil(t).AddDate(0, 0, n)
}

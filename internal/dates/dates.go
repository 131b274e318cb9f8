// Package dates wraps free-text date parsing and the day-granularity
// arithmetic the scheduler and calendar share.
package dates

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ISO is the storage format for every date column.
const ISO = "2006-01-02"

// Parse accepts free-text date input ("1990-05-12", "May 12 1990",
// "12/05/1990", ...) and returns it at day granularity.
func Parse(text string) (time.Time, error) {
	t, err := dateparse.ParseAny(text)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", text, err)
	}
	return Truncate(t), nil
}

// ParseISO parses a stored ISO date.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(ISO, s)
}

// FormatISO renders a date in storage format.
func FormatISO(t time.Time) string {
	return t.Format(ISO)
}

// Truncate drops the time-of-day component.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Anniversary projects a recurring date into the given year. Feb 29
// normalizes to Mar 1 in non-leap years, which time.Date does for us.
func Anniversary(orig time.Time, year int) time.Time {
	return time.Date(year, orig.Month(), orig.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns b - a in whole days at date granularity.
func DaysBetween(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a)).Hours() / 24)
}

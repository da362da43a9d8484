// Package calendar owns every piece of date arithmetic in the engine. All
// other packages express "day", "week" and "month" through a Context so the
// first-weekday setting is honored everywhere.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate marks a date outside the range the engine will compute on.
var ErrInvalidDate = errors.New("invalid date")

const (
	minYear = 1
	maxYear = 9999

	// DayKeyLayout formats a timestamp as its calendar-day key.
	DayKeyLayout = "2006-01-02"
)

// Context wraps the calendar configuration: which weekday starts a week.
// The zero value starts weeks on Sunday.
type Context struct {
	FirstWeekday time.Weekday
}

// Sunday and Monday are the two supported first-weekday settings.
func Sunday() Context { return Context{FirstWeekday: time.Sunday} }
func Monday() Context { return Context{FirstWeekday: time.Monday} }

// Validate fails with ErrInvalidDate when t is outside the representable
// range. Callers fail the single operation; they never substitute "now".
func (c Context) Validate(t time.Time) error {
	if t.IsZero() || t.Year() < minYear || t.Year() > maxYear {
		return fmt.Errorf("%w: %v", ErrInvalidDate, t)
	}
	return nil
}

// StartOfDay returns midnight of t's calendar day, in t's location.
func (c Context) StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the inclusive upper bound of t's day: the start of the
// next day minus one nanosecond.
func (c Context) EndOfDay(t time.Time) time.Time {
	return c.StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight of the first weekday at or before t.
func (c Context) StartOfWeek(t time.Time) time.Time {
	day := c.StartOfDay(t)
	back := (int(day.Weekday()) - int(c.FirstWeekday) + 7) % 7
	return day.AddDate(0, 0, -back)
}

// EndOfWeek returns the inclusive upper bound of t's week.
func (c Context) EndOfWeek(t time.Time) time.Time {
	return c.StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight of the first day of t's month.
func (c Context) StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the inclusive upper bound of t's month.
func (c Context) EndOfMonth(t time.Time) time.Time {
	return c.StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// Weekday reports t's weekday numbered 1=Sunday .. 7=Saturday. The
// numbering is fixed; FirstWeekday only moves week boundaries.
func (c Context) Weekday(t time.Time) int {
	return int(t.Weekday()) + 1
}

// DayOfMonth reports t's day of month, 1-based.
func (c Context) DayOfMonth(t time.Time) int {
	return t.Day()
}

// SameDay reports whether a and b fall on the same calendar day.
func (c Context) SameDay(a, b time.Time) bool {
	return c.DayKey(a) == c.DayKey(b)
}

// DayKey returns t's calendar-day key, e.g. "2024-01-05".
func (c Context) DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

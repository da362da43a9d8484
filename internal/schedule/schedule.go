// Package schedule resolves whether a habit is due on a given day and how
// far along a quota habit is in its current period.
package schedule

import (
	"time"

	"github.com/banghuazhao/longevity-master-sub000/internal/calendar"
	"github.com/banghuazhao/longevity-master-sub000/internal/model"
)

// IsScheduled reports whether the habit governed by rule should appear on
// the due list for date. checkIns must already be filtered to the habit.
//
// Fixed-day rules match the date against their day set. Quota rules are
// "eligible to appear": once the period's quota is met the habit drops off
// the list until the next period, except that a date which itself has a
// completion stays visible so the user can un-check it.
func IsScheduled(cal calendar.Context, rule model.Rule, date time.Time, checkIns []model.CheckIn) bool {
	switch rule.Kind {
	case model.KindFixedDaysInWeek:
		return rule.HasDay(cal.Weekday(date))
	case model.KindFixedDaysInMonth:
		return rule.HasDay(cal.DayOfMonth(date))
	case model.KindNPerWeek:
		return quotaEligible(cal, date, checkIns, rule.Quota(), cal.StartOfWeek(date), cal.EndOfWeek(date))
	case model.KindNPerMonth:
		return quotaEligible(cal, date, checkIns, rule.Quota(), cal.StartOfMonth(date), cal.EndOfMonth(date))
	}
	return false
}

// CompletedOn reports whether at least one check-in falls on date's day.
func CompletedOn(cal calendar.Context, date time.Time, checkIns []model.CheckIn) bool {
	from, to := cal.StartOfDay(date), cal.EndOfDay(date)
	for _, c := range checkIns {
		if !c.Timestamp.Before(from) && !c.Timestamp.After(to) {
			return true
		}
	}
	return false
}

// DistinctDays counts the calendar days in [from, to] with a check-in.
func DistinctDays(cal calendar.Context, checkIns []model.CheckIn, from, to time.Time) int {
	seen := map[string]struct{}{}
	for _, c := range checkIns {
		if c.Timestamp.Before(from) || c.Timestamp.After(to) {
			continue
		}
		seen[cal.DayKey(c.Timestamp)] = struct{}{}
	}
	return len(seen)
}

// QuotaProgress returns the "done of target" state of a quota habit as of
// date: completed days from the period start through the end of date, not
// the whole period. ok is false for fixed-day rules, which have no quota.
func QuotaProgress(cal calendar.Context, rule model.Rule, date time.Time, checkIns []model.CheckIn) (done, target int, ok bool) {
	var start time.Time
	switch rule.Kind {
	case model.KindNPerWeek:
		start = cal.StartOfWeek(date)
	case model.KindNPerMonth:
		start = cal.StartOfMonth(date)
	default:
		return 0, 0, false
	}
	return DistinctDays(cal, checkIns, start, cal.EndOfDay(date)), rule.Quota(), true
}

func quotaEligible(cal calendar.Context, date time.Time, checkIns []model.CheckIn, quota int, periodStart, periodEnd time.Time) bool {
	if CompletedOn(cal, date, checkIns) {
		return true
	}
	return DistinctDays(cal, checkIns, periodStart, periodEnd) < quota
}

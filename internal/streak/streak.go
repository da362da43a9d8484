// Package streak computes consecutive-adherence streaks from a habit's
// check-in history. Fixed-day rules walk backward day by day; quota rules
// walk backward period by period and accumulate completed days.
package streak

import (
	"sort"
	"time"

	"github.com/banghuazhao/longevity-master-sub000/internal/calendar"
	"github.com/banghuazhao/longevity-master-sub000/internal/model"
	"github.com/banghuazhao/longevity-master-sub000/internal/schedule"
)

// maxWalkDays bounds the fixed-day backward walk so a fully-checked history
// or an empty day set can never loop unbounded.
const maxWalkDays = 3660

// Current computes the habit's current streak as of ref. checkIns must
// already be filtered to the habit. An empty history yields 0.
func Current(cal calendar.Context, rule model.Rule, checkIns []model.CheckIn, ref time.Time) int {
	if len(checkIns) == 0 {
		return 0
	}
	switch rule.Kind {
	case model.KindFixedDaysInWeek, model.KindFixedDaysInMonth:
		return fixedDayStreak(cal, rule, checkIns, ref)
	case model.KindNPerWeek:
		return quotaStreak(cal, rule.Quota(), checkIns, ref, weekly)
	case model.KindNPerMonth:
		return quotaStreak(cal, rule.Quota(), checkIns, ref, monthly)
	}
	return 0
}

// CalendarDays is the plain daily streak irrespective of any rule: count
// consecutive days with at least one check-in, walking backward from ref
// and including ref's own day.
func CalendarDays(cal calendar.Context, checkIns []model.CheckIn, ref time.Time) int {
	days := dayKeySet(cal, checkIns)
	streak := 0
	for day := cal.StartOfDay(ref); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[cal.DayKey(day)]; !ok {
			return streak
		}
		streak++
	}
}

// LongestRun scans the full distinct check-in day set for the longest run
// of consecutive calendar days, regardless of where "now" is.
func LongestRun(cal calendar.Context, checkIns []model.CheckIn) int {
	keys := dayKeySet(cal, checkIns)
	if len(keys) == 0 {
		return 0
	}
	days := make([]time.Time, 0, len(keys))
	for k := range keys {
		d, err := time.Parse(calendar.DayKeyLayout, k)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// fixedDayStreak walks backward one day at a time from ref. Days outside
// the rule's day set are skipped, not required; the first scheduled day
// without a completion ends the walk.
func fixedDayStreak(cal calendar.Context, rule model.Rule, checkIns []model.CheckIn, ref time.Time) int {
	days := dayKeySet(cal, checkIns)
	streak := 0
	day := cal.StartOfDay(ref)
	for i := 0; i < maxWalkDays; i++ {
		scheduled := false
		switch rule.Kind {
		case model.KindFixedDaysInWeek:
			scheduled = rule.HasDay(cal.Weekday(day))
		case model.KindFixedDaysInMonth:
			scheduled = rule.HasDay(cal.DayOfMonth(day))
		}
		if scheduled {
			if _, ok := days[cal.DayKey(day)]; !ok {
				break
			}
			streak++
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

type periodKind int

const (
	weekly periodKind = iota
	monthly
)

// quotaStreak walks backward one period at a time from the period holding
// ref, summing each period's distinct completed days. The first period
// below quota still contributes its partial count, then the walk stops.
// The result is a day count accumulated across periods, not a period
// count; keep it that way.
func quotaStreak(cal calendar.Context, quota int, checkIns []model.CheckIn, ref time.Time, kind periodKind) int {
	total := 0
	start := periodStart(cal, ref, kind)
	for {
		end := periodEnd(cal, start, kind)
		completed := schedule.DistinctDays(cal, checkIns, start, end)
		total += completed
		if completed < quota {
			return total
		}
		start = previousPeriod(cal, start, kind)
	}
}

func periodStart(cal calendar.Context, t time.Time, kind periodKind) time.Time {
	if kind == weekly {
		return cal.StartOfWeek(t)
	}
	return cal.StartOfMonth(t)
}

func periodEnd(cal calendar.Context, start time.Time, kind periodKind) time.Time {
	if kind == weekly {
		return cal.EndOfWeek(start)
	}
	return cal.EndOfMonth(start)
}

func previousPeriod(cal calendar.Context, start time.Time, kind periodKind) time.Time {
	if kind == weekly {
		return start.AddDate(0, 0, -7)
	}
	return start.AddDate(0, -1, 0)
}

func dayKeySet(cal calendar.Context, checkIns []model.CheckIn) map[string]struct{} {
	days := make(map[string]struct{}, len(checkIns))
	for _, c := range checkIns {
		days[cal.DayKey(c.Timestamp)] = struct{}{}
	}
	return days
}

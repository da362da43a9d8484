package schedule

import (
	"testing"
	"time"

	"github.com/banghuazhao/longevity-master-sub000/internal/calendar"
	"github.com/banghuazhao/longevity-master-sub000/internal/model"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func checkIns(habitID int64, times ...time.Time) []model.CheckIn {
	out := make([]model.CheckIn, 0, len(times))
	for i, ts := range times {
		out = append(out, model.CheckIn{ID: int64(i + 1), HabitID: habitID, Timestamp: ts})
	}
	return out
}

func TestIsScheduled_FixedWeekdays_EightWeeks(t *testing.T) {
	cal := calendar.Monday()
	rule := model.FixedDaysInWeek(2, 4) // Monday, Wednesday

	// 2024-01-01 is a Monday; walk 8 full weeks.
	start := at(2024, 1, 1, 12)
	for i := 0; i < 8*7; i++ {
		day := start.AddDate(0, 0, i)
		want := day.Weekday() == time.Monday || day.Weekday() == time.Wednesday
		if got := IsScheduled(cal, rule, day, nil); got != want {
			t.Fatalf("day %v: scheduled=%v, want %v", day, got, want)
		}
	}
}

func TestIsScheduled_FixedMonthDays(t *testing.T) {
	cal := calendar.Monday()
	rule := model.FixedDaysInMonth(1, 15)

	if !IsScheduled(cal, rule, at(2024, 3, 15, 9), nil) {
		t.Fatalf("expected the 15th to be scheduled")
	}
	if IsScheduled(cal, rule, at(2024, 3, 16, 9), nil) {
		t.Fatalf("expected the 16th to be unscheduled")
	}
}

func TestIsScheduled_EmptyDaySetNeverScheduled(t *testing.T) {
	cal := calendar.Monday()
	rule := model.ParseFrequencyDetail(model.KindFixedDaysInWeek, "garbage")
	for i := 0; i < 14; i++ {
		if IsScheduled(cal, rule, at(2024, 1, 1, 9).AddDate(0, 0, i), nil) {
			t.Fatalf("empty day set must never schedule")
		}
	}
}

func TestIsScheduled_QuotaMetDisappears(t *testing.T) {
	cal := calendar.Monday()
	rule := model.NPerWeek(3)

	// Three distinct days already completed this week, none on the ref day.
	cs := checkIns(1,
		at(2024, 1, 15, 9), // Mon
		at(2024, 1, 16, 9), // Tue
		at(2024, 1, 17, 9), // Wed
	)
	ref := at(2024, 1, 18, 10) // Thu

	if IsScheduled(cal, rule, ref, cs) {
		t.Fatalf("quota met: habit should drop off the due list")
	}
}

func TestIsScheduled_QuotaMetButCompletedTodayStaysVisible(t *testing.T) {
	cal := calendar.Monday()
	rule := model.NPerWeek(3)

	cs := checkIns(1,
		at(2024, 1, 15, 9),
		at(2024, 1, 16, 9),
		at(2024, 1, 18, 8), // the ref day itself
	)
	ref := at(2024, 1, 18, 10)

	if !IsScheduled(cal, rule, ref, cs) {
		t.Fatalf("a completed ref day must stay visible for un-checking")
	}
	if !CompletedOn(cal, ref, cs) {
		t.Fatalf("ref day should be completed")
	}
}

func TestIsScheduled_QuotaBelowTargetAppears(t *testing.T) {
	cal := calendar.Monday()
	rule := model.NPerWeek(3)

	cs := checkIns(1, at(2024, 1, 15, 9))
	if !IsScheduled(cal, rule, at(2024, 1, 18, 10), cs) {
		t.Fatalf("quota unmet: habit should appear")
	}
}

func TestQuotaProgress_CountsAsOfReferenceDate(t *testing.T) {
	cal := calendar.Monday()
	rule := model.NPerWeek(3)

	// Two days completed by Wednesday, a third later in the same week.
	cs := checkIns(1,
		at(2024, 1, 15, 9),
		at(2024, 1, 16, 9),
		at(2024, 1, 19, 9), // Friday, after the ref date
	)
	done, target, ok := QuotaProgress(cal, rule, at(2024, 1, 17, 12), cs)
	if !ok {
		t.Fatalf("expected quota progress for quota rule")
	}
	if done != 2 || target != 3 {
		t.Fatalf("expected 2/3 as of Wednesday, got %d/%d", done, target)
	}
}

func TestQuotaProgress_NotApplicableToFixedRules(t *testing.T) {
	cal := calendar.Monday()
	if _, _, ok := QuotaProgress(cal, model.FixedDaysInWeek(2), at(2024, 1, 15, 9), nil); ok {
		t.Fatalf("fixed-day rules have no quota progress")
	}
}

func TestDistinctDays_CollapsesSameDayCheckIns(t *testing.T) {
	cal := calendar.Monday()
	cs := checkIns(1,
		at(2024, 1, 15, 9),
		at(2024, 1, 15, 21), // same day again
		at(2024, 1, 16, 9),
	)
	got := DistinctDays(cal, cs, at(2024, 1, 15, 0), cal.EndOfDay(at(2024, 1, 16, 0)))
	if got != 2 {
		t.Fatalf("expected 2 distinct days, got %d", got)
	}
}

package achievement

import (
	"time"

	"go.uber.org/zap"

	"github.com/banghuazhao/longevity-master-sub000/internal/calendar"
	"github.com/banghuazhao/longevity-master-sub000/internal/model"
	"github.com/banghuazhao/longevity-master-sub000/internal/schedule"
	"github.com/banghuazhao/longevity-master-sub000/internal/streak"
)

const (
	earlyBirdBeforeHour = 8
	nightOwlFromHour    = 22
)

// Evaluator runs unlock predicates against a consistent snapshot of habits,
// check-ins and achievements. It holds no mutable state of its own.
type Evaluator struct {
	cal calendar.Context
	log *zap.Logger
}

// NewEvaluator builds an evaluator. A nil logger is replaced with a no-op.
func NewEvaluator(cal calendar.Context, log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{cal: cal, log: log}
}

// input is the normalized bundle every predicate receives.
type input struct {
	cal      calendar.Context
	habits   []model.Habit
	byHabit  map[int64][]model.CheckIn
	scoped   []model.CheckIn // check-ins in the achievement's habit scope
	all      []model.CheckIn
	trigger  model.CheckIn
	criteria Criteria
}

type predicate func(in input) bool

var predicates = map[Type]predicate{
	TypeStreak:         unlockStreak,
	TypeTotalCheckIns:  unlockTotalCheckIns,
	TypePerfectWeek:    unlockPerfectWeek,
	TypePerfectMonth:   unlockPerfectMonth,
	TypeCategoryMaster: unlockCategoryMaster,
	TypeEarlyBird:      unlockEarlyBird,
	TypeNightOwl:       unlockNightOwl,
	TypeConsistency:    unlockConsistency,
	TypeVariety:        unlockVariety,
	TypeMilestone:      unlockMilestone,
}

// Evaluate attempts every locked achievement exactly once against the
// post-check-in state and returns copies of those that unlocked, with
// UnlockedAt set to now. Already-unlocked achievements are never touched,
// so re-running with the same inputs returns an empty set.
func (e *Evaluator) Evaluate(achievements []Achievement, habits []model.Habit, checkIns []model.CheckIn, trigger model.CheckIn, now time.Time) []Achievement {
	byHabit := model.ByHabit(checkIns)

	var unlocked []Achievement
	for _, a := range achievements {
		if a.Unlocked {
			continue
		}
		pred, ok := predicates[a.Type]
		if !ok {
			e.log.Warn("unknown achievement type, skipping",
				zap.String("achievement", a.ID),
				zap.String("type", string(a.Type)))
			continue
		}
		in := input{
			cal:      e.cal,
			habits:   habits,
			byHabit:  byHabit,
			scoped:   scopedCheckIns(a, checkIns, byHabit),
			all:      checkIns,
			trigger:  trigger,
			criteria: a.Criteria,
		}
		if !pred(in) {
			continue
		}
		a.Unlocked = true
		at := now
		a.UnlockedAt = &at
		unlocked = append(unlocked, a)
	}
	return unlocked
}

func scopedCheckIns(a Achievement, all []model.CheckIn, byHabit map[int64][]model.CheckIn) []model.CheckIn {
	if a.HabitID == nil {
		return all
	}
	return byHabit[*a.HabitID]
}

// unlockStreak uses the plain walk-backward-by-day streak from the trigger
// date, not the habit's rule-specific streak.
func unlockStreak(in input) bool {
	return streak.CalendarDays(in.cal, in.scoped, in.trigger.Timestamp) >= in.criteria.Target
}

func unlockTotalCheckIns(in input) bool {
	return len(in.scoped) >= in.criteria.Target
}

func unlockPerfectWeek(in input) bool {
	return perfectPeriod(in, in.cal.StartOfWeek(in.trigger.Timestamp), in.cal.EndOfWeek(in.trigger.Timestamp))
}

func unlockPerfectMonth(in input) bool {
	return perfectPeriod(in, in.cal.StartOfMonth(in.trigger.Timestamp), in.cal.EndOfMonth(in.trigger.Timestamp))
}

// perfectPeriod requires every non-archived habit to be completed on every
// day it is scheduled within [start, end]. Quota-type habits count as
// scheduled on every day of the period.
func perfectPeriod(in input, start, end time.Time) bool {
	for _, h := range in.habits {
		if h.IsArchived {
			continue
		}
		habitCheckIns := in.byHabit[h.ID]
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			required := false
			switch h.Rule.Kind {
			case model.KindFixedDaysInWeek:
				required = h.Rule.HasDay(in.cal.Weekday(day))
			case model.KindFixedDaysInMonth:
				required = h.Rule.HasDay(in.cal.DayOfMonth(day))
			case model.KindNPerWeek, model.KindNPerMonth:
				required = true
			}
			if required && !schedule.CompletedOn(in.cal, day, habitCheckIns) {
				return false
			}
		}
	}
	return true
}

func unlockCategoryMaster(in input) bool {
	categories := make(map[int64]model.Category, len(in.habits))
	for _, h := range in.habits {
		categories[h.ID] = h.Category
	}
	count := 0
	for _, c := range in.all {
		if categories[c.HabitID] == in.criteria.Category {
			count++
		}
	}
	return count >= in.criteria.Target
}

func unlockEarlyBird(in input) bool {
	return in.trigger.Timestamp.Hour() < earlyBirdBeforeHour
}

func unlockNightOwl(in input) bool {
	return in.trigger.Timestamp.Hour() >= nightOwlFromHour
}

// unlockConsistency is the any-habit daily streak: a day counts if any
// check-in landed on it.
func unlockConsistency(in input) bool {
	return streak.CalendarDays(in.cal, in.all, in.trigger.Timestamp) >= in.criteria.Target
}

func unlockVariety(in input) bool {
	categories := make(map[int64]model.Category, len(in.habits))
	for _, h := range in.habits {
		categories[h.ID] = h.Category
	}
	seen := map[model.Category]struct{}{}
	for _, c := range in.all {
		if cat, ok := categories[c.HabitID]; ok {
			seen[cat] = struct{}{}
		}
	}
	return len(seen) >= in.criteria.Target
}

func unlockMilestone(in input) bool {
	return len(in.all) >= in.criteria.Target
}

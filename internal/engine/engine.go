// Package engine is the facade the storage and presentation layers call:
// resolve the day's due habits, evaluate achievements for a new check-in,
// and compute the wellness score. Every operation is a pure function of the
// snapshot it is handed; the engine holds no mutable state.
package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/banghuazhao/longevity-master-sub000/internal/achievement"
	"github.com/banghuazhao/longevity-master-sub000/internal/calendar"
	"github.com/banghuazhao/longevity-master-sub000/internal/config"
	"github.com/banghuazhao/longevity-master-sub000/internal/model"
	"github.com/banghuazhao/longevity-master-sub000/internal/schedule"
	"github.com/banghuazhao/longevity-master-sub000/internal/score"
	"github.com/banghuazhao/longevity-master-sub000/internal/streak"
)

// Engine bundles the calendar context, score weights, clock and logger.
type Engine struct {
	Calendar calendar.Context
	Weights  config.ScoreWeights
	Clock    Clock
	Log      *zap.Logger

	evaluator *achievement.Evaluator
}

// New builds an engine from config. A nil logger is replaced with a no-op.
func New(cfg config.Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	cal := cfg.Calendar()
	return &Engine{
		Calendar:  cal,
		Weights:   cfg.Score,
		Clock:     RealClock{},
		Log:       log,
		evaluator: achievement.NewEvaluator(cal, log),
	}
}

// TodayHabit decorates a scheduled habit with its completion, streak and
// quota state for the reference day.
type TodayHabit struct {
	Habit       model.Habit `json:"habit"`
	Completed   bool        `json:"completed"`
	Streak      int         `json:"streak"`
	StreakLabel string      `json:"streak_label,omitempty"`
	QuotaDone   int         `json:"quota_done,omitempty"`
	QuotaTarget int         `json:"quota_target,omitempty"`
	QuotaLabel  string      `json:"quota_label,omitempty"`
}

// ResolveTodayHabits filters habits to those scheduled on ref and decorates
// each with completion, streak and quota progress. Archived habits are
// excluded. A failure on one habit is logged and skips that habit only; an
// unrepresentable ref fails the whole operation.
func (e *Engine) ResolveTodayHabits(habits []model.Habit, checkIns []model.CheckIn, ref time.Time) ([]TodayHabit, error) {
	if err := e.Calendar.Validate(ref); err != nil {
		return nil, fmt.Errorf("resolve today habits: %w", err)
	}

	byHabit := model.ByHabit(checkIns)
	out := make([]TodayHabit, 0, len(habits))
	for _, h := range habits {
		if h.IsArchived {
			continue
		}
		own := byHabit[h.ID]
		if !schedule.IsScheduled(e.Calendar, h.Rule, ref, own) {
			continue
		}

		th := TodayHabit{
			Habit:     h,
			Completed: schedule.CompletedOn(e.Calendar, ref, own),
			Streak:    streak.Current(e.Calendar, h.Rule, own, ref),
		}
		if th.Streak > 0 {
			th.StreakLabel = fmt.Sprintf("%d day streak", th.Streak)
		}
		if done, target, ok := schedule.QuotaProgress(e.Calendar, h.Rule, ref, own); ok {
			th.QuotaDone = done
			th.QuotaTarget = target
			th.QuotaLabel = fmt.Sprintf("%d/%d %s", done, target, quotaPeriodName(h.Rule))
		}
		out = append(out, th)
	}
	return out, nil
}

// EvaluateAchievements runs every locked achievement against the
// post-check-in state and returns the ones that unlocked, stamped with the
// clock's current time. The caller persists the returned records.
func (e *Engine) EvaluateAchievements(achievements []achievement.Achievement, habits []model.Habit, checkIns []model.CheckIn, trigger model.CheckIn) []achievement.Achievement {
	if err := e.Calendar.Validate(trigger.Timestamp); err != nil {
		e.Log.Warn("achievement trigger has invalid timestamp, skipping evaluation", zap.Error(err))
		return nil
	}
	return e.evaluator.Evaluate(achievements, habits, checkIns, trigger, e.Clock.Now())
}

// ComputeScore aggregates the wellness score from the current snapshot.
func (e *Engine) ComputeScore(habits []model.Habit, achievements []achievement.Achievement, checkIns []model.CheckIn) score.Breakdown {
	longest := streak.LongestRun(e.Calendar, checkIns)
	return score.Compute(habits, achievements, checkIns, longest, e.Weights)
}

func quotaPeriodName(r model.Rule) string {
	if r.Kind == model.KindNPerMonth {
		return "this month"
	}
	return "this week"
}

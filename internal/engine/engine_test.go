package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banghuazhao/longevity-master-sub000/internal/achievement"
	"github.com/banghuazhao/longevity-master-sub000/internal/calendar"
	"github.com/banghuazhao/longevity-master-sub000/internal/config"
	"github.com/banghuazhao/longevity-master-sub000/internal/model"
)

func newEngineForTest() *Engine {
	e := New(config.Default(), nil)
	e.Clock = NewFakeClock(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC))
	return e
}

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func dailyCheckIns(habitID int64, from time.Time, days int) []model.CheckIn {
	out := make([]model.CheckIn, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, model.CheckIn{ID: int64(i + 1), HabitID: habitID, Timestamp: from.AddDate(0, 0, i)})
	}
	return out
}

func TestResolveTodayHabits_DailyHabitFiveDayStreak(t *testing.T) {
	e := newEngineForTest()
	habits := []model.Habit{{
		ID:   1,
		Name: "morning walk",
		Rule: model.FixedDaysInWeek(1, 2, 3, 4, 5, 6, 7),
	}}
	cs := dailyCheckIns(1, at(2024, 1, 1, 9), 5)

	today, err := e.ResolveTodayHabits(habits, cs, at(2024, 1, 5, 18))
	require.NoError(t, err)
	require.Len(t, today, 1)

	th := today[0]
	assert.True(t, th.Completed)
	assert.Equal(t, 5, th.Streak)
	assert.Equal(t, "5 day streak", th.StreakLabel)
	assert.Empty(t, th.QuotaLabel, "fixed-day habits carry no quota label")
}

func TestResolveTodayHabits_QuotaHabitDecoration(t *testing.T) {
	e := newEngineForTest()
	habits := []model.Habit{{ID: 1, Name: "gym", Rule: model.NPerWeek(3)}}
	cs := []model.CheckIn{
		{ID: 1, HabitID: 1, Timestamp: at(2024, 1, 1, 9)}, // Mon
		{ID: 2, HabitID: 1, Timestamp: at(2024, 1, 2, 9)}, // Tue
	}

	today, err := e.ResolveTodayHabits(habits, cs, at(2024, 1, 3, 12))
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.False(t, today[0].Completed)
	assert.Equal(t, 2, today[0].QuotaDone)
	assert.Equal(t, 3, today[0].QuotaTarget)
	assert.Equal(t, "2/3 this week", today[0].QuotaLabel)
}

func TestResolveTodayHabits_QuotaMetHabitDisappears(t *testing.T) {
	e := newEngineForTest()
	habits := []model.Habit{{ID: 1, Name: "gym", Rule: model.NPerWeek(2)}}
	cs := []model.CheckIn{
		{ID: 1, HabitID: 1, Timestamp: at(2024, 1, 1, 9)},
		{ID: 2, HabitID: 1, Timestamp: at(2024, 1, 2, 9)},
	}

	today, err := e.ResolveTodayHabits(habits, cs, at(2024, 1, 4, 12))
	require.NoError(t, err)
	assert.Empty(t, today)
}

func TestResolveTodayHabits_SkipsArchived(t *testing.T) {
	e := newEngineForTest()
	habits := []model.Habit{
		{ID: 1, Name: "walk", Rule: model.FixedDaysInWeek(1, 2, 3, 4, 5, 6, 7)},
		{ID: 2, Name: "old", Rule: model.FixedDaysInWeek(1, 2, 3, 4, 5, 6, 7), IsArchived: true},
	}
	today, err := e.ResolveTodayHabits(habits, nil, at(2024, 1, 5, 12))
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, int64(1), today[0].Habit.ID)
	assert.Equal(t, 0, today[0].Streak, "no history means no streak")
}

func TestResolveTodayHabits_InvalidDateFailsOperation(t *testing.T) {
	e := newEngineForTest()
	_, err := e.ResolveTodayHabits(nil, nil, time.Time{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, calendar.ErrInvalidDate))
}

func TestResolveTodayHabits_MalformedDetailDegrades(t *testing.T) {
	e := newEngineForTest()
	habits := []model.Habit{{
		ID:   1,
		Name: "broken",
		Rule: model.ParseFrequencyDetail(model.KindFixedDaysInWeek, "???"),
	}}
	// Degrades to "no scheduled days": absent from every day's due list.
	for i := 0; i < 7; i++ {
		today, err := e.ResolveTodayHabits(habits, nil, at(2024, 1, 1, 12).AddDate(0, 0, i))
		require.NoError(t, err)
		assert.Empty(t, today)
	}
}

func TestEvaluateAchievements_StampsClockTime(t *testing.T) {
	e := newEngineForTest()
	habits := []model.Habit{{ID: 1, Rule: model.NPerWeek(7)}}
	cs := dailyCheckIns(1, at(2024, 1, 1, 9), 10)

	achievements := []achievement.Achievement{
		{ID: "ten", Type: achievement.TypeTotalCheckIns, Criteria: achievement.Criteria{Target: 10}},
	}
	unlocked := e.EvaluateAchievements(achievements, habits, cs, cs[len(cs)-1])
	require.Len(t, unlocked, 1)
	require.NotNil(t, unlocked[0].UnlockedAt)
	assert.Equal(t, e.Clock.Now(), *unlocked[0].UnlockedAt)
}

func TestEvaluateAchievements_InvalidTriggerEvaluatesNothing(t *testing.T) {
	e := newEngineForTest()
	achievements := []achievement.Achievement{
		{ID: "one", Type: achievement.TypeMilestone, Criteria: achievement.Criteria{Target: 0}},
	}
	unlocked := e.EvaluateAchievements(achievements, nil, nil, model.CheckIn{})
	assert.Empty(t, unlocked)
}

func TestComputeScore_EndToEnd(t *testing.T) {
	e := newEngineForTest()
	habits := []model.Habit{
		{ID: 1, AntiAgingRating: 4, Rule: model.FixedDaysInWeek(1, 2, 3, 4, 5, 6, 7)},
		{ID: 2, AntiAgingRating: 2, Rule: model.NPerWeek(3)},
	}
	now := at(2024, 1, 10, 9)
	achievements := []achievement.Achievement{
		{ID: "a", Unlocked: true, UnlockedAt: &now},
		{ID: "b"},
	}
	cs := dailyCheckIns(1, at(2024, 1, 1, 9), 5)

	b := e.ComputeScore(habits, achievements, cs)
	assert.Equal(t, 20, b.ActiveHabitsScore)
	assert.Equal(t, 12, b.AntiAgingScore)  // (4+2) stars x 2
	assert.Equal(t, 10, b.AchievementsScore)
	assert.Equal(t, 10, b.TotalCheckInsScore) // 5 x 2
	assert.Equal(t, 10, b.LongestStreakScore) // 5-day run x 2
	assert.Equal(t, 62, b.Total)
	assert.Equal(t, "F", string(b.Rating))
	assert.Equal(t, 38, b.ToNextRating)
}

// Package score aggregates the wellness score: five capped category
// sub-scores summed into an uncapped total, mapped to a 12-tier rating.
package score

import (
	"github.com/banghuazhao/longevity-master-sub000/internal/achievement"
	"github.com/banghuazhao/longevity-master-sub000/internal/config"
	"github.com/banghuazhao/longevity-master-sub000/internal/model"
)

// Rating is an ordinal tier derived from the total score.
type Rating string

// ratings in ascending order; band k covers [k*100, (k+1)*100) and the
// last band is open-ended.
var ratings = []Rating{"F", "D-", "D", "C-", "C", "B-", "B", "A-", "A", "S", "SS", "SSS"}

const bandWidth = 100

// Breakdown is the computed score, its components, and the rating tier.
type Breakdown struct {
	ActiveHabitsScore  int    `json:"active_habits_score"`
	AntiAgingScore     int    `json:"anti_aging_score"`
	AchievementsScore  int    `json:"achievements_score"`
	TotalCheckInsScore int    `json:"total_check_ins_score"`
	LongestStreakScore int    `json:"longest_streak_score"`
	Total              int    `json:"total"`
	Rating             Rating `json:"rating"`
	ToNextRating       int    `json:"to_next_rating"`
}

// Compute derives the breakdown from a snapshot. longestStreak is the
// longest-ever run of consecutive check-in days across all habits.
func Compute(habits []model.Habit, achievements []achievement.Achievement, checkIns []model.CheckIn, longestStreak int, w config.ScoreWeights) Breakdown {
	active := 0
	stars := 0
	for _, h := range habits {
		if h.IsArchived {
			continue
		}
		active++
		stars += h.AntiAgingStars()
	}

	b := Breakdown{
		ActiveHabitsScore:  capped(w.PointsPerActiveHabit*active, w.ActiveHabitsCap),
		AntiAgingScore:     capped(w.PointsPerAntiAgingStar*stars, w.AntiAgingCap),
		AchievementsScore:  capped(w.PointsPerAchievement*achievement.CountUnlocked(achievements), w.PointsPerAchievement*len(achievements)),
		TotalCheckInsScore: capped(w.PointsPerCheckIn*len(checkIns), w.CheckInsCap),
		LongestStreakScore: capped(w.PointsPerStreakDay*longestStreak, w.StreakCap),
	}
	b.Total = b.ActiveHabitsScore + b.AntiAgingScore + b.AchievementsScore + b.TotalCheckInsScore + b.LongestStreakScore
	b.Rating = RatingForScore(b.Total)
	b.ToNextRating = toNextRating(b.Total)
	return b
}

// RatingForScore maps a total score to its tier.
func RatingForScore(total int) Rating {
	band := total / bandWidth
	if band < 0 {
		band = 0
	}
	if band >= len(ratings) {
		band = len(ratings) - 1
	}
	return ratings[band]
}

// toNextRating is the distance to the next band's floor, 0 at the top tier.
func toNextRating(total int) int {
	band := total / bandWidth
	if band >= len(ratings)-1 {
		return 0
	}
	return (band+1)*bandWidth - total
}

func capped(v, limit int) int {
	if v > limit {
		return limit
	}
	return v
}

// Package achievement defines the gamified unlock catalog and the rule
// evaluator that transitions achievements from locked to unlocked.
package achievement

import (
	"time"

	"github.com/banghuazhao/longevity-master-sub000/internal/model"
)

// Type selects the unlock predicate for an achievement.
type Type string

const (
	TypeStreak         Type = "streak"
	TypeTotalCheckIns  Type = "total_check_ins"
	TypePerfectWeek    Type = "perfect_week"
	TypePerfectMonth   Type = "perfect_month"
	TypeCategoryMaster Type = "category_master"
	TypeEarlyBird      Type = "early_bird"
	TypeNightOwl       Type = "night_owl"
	TypeConsistency    Type = "consistency"
	TypeVariety        Type = "variety"
	TypeMilestone      Type = "milestone"
)

// Criteria parameterizes an achievement's predicate. Target is the
// threshold; Category narrows category_master to one habit category.
type Criteria struct {
	Target   int            `json:"target" yaml:"target"`
	Category model.Category `json:"category,omitempty" yaml:"category,omitempty"`
}

// Achievement is a one-time unlockable. HabitID nil means the achievement
// is global and evaluated across all habits. Once Unlocked flips true it
// never flips back and UnlockedAt is never rewritten.
type Achievement struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Type        Type       `json:"type" yaml:"type"`
	Criteria    Criteria   `json:"criteria" yaml:"criteria"`
	HabitID     *int64     `json:"habit_id,omitempty" yaml:"habit_id,omitempty"`
	Unlocked    bool       `json:"unlocked" yaml:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty" yaml:"unlocked_at,omitempty"`
}

// CountUnlocked returns how many achievements are unlocked.
func CountUnlocked(achievements []Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}

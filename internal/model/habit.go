package model

import "time"

// Category classifies a habit by the wellness area it serves.
type Category string

const (
	CategoryDiet             Category = "diet"
	CategoryExercise         Category = "exercise"
	CategorySleep            Category = "sleep"
	CategoryPreventiveHealth Category = "preventive_health"
	CategoryMentalHealth     Category = "mental_health"
)

// Categories lists every known category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryDiet,
		CategoryExercise,
		CategorySleep,
		CategoryPreventiveHealth,
		CategoryMentalHealth,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryDiet, CategoryExercise, CategorySleep, CategoryPreventiveHealth, CategoryMentalHealth:
		return true
	}
	return false
}

const (
	minAntiAgingRating = 1
	maxAntiAgingRating = 5
)

// Habit is a recurring behavior the user wants to keep up. The engine only
// reads habits; creation and mutation belong to the storage layer.
type Habit struct {
	ID              int64     `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	Category        Category  `json:"category" yaml:"category"`
	Rule            Rule      `json:"rule" yaml:"rule"`
	AntiAgingRating int       `json:"anti_aging_rating" yaml:"anti_aging_rating"`
	IsFavorite      bool      `json:"is_favorite,omitempty" yaml:"is_favorite,omitempty"`
	IsArchived      bool      `json:"is_archived,omitempty" yaml:"is_archived,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// AntiAgingStars returns the habit's 1-5 anti-aging rating clamped into
// range, so a bad stored value degrades instead of skewing scores.
func (h Habit) AntiAgingStars() int {
	switch {
	case h.AntiAgingRating < minAntiAgingRating:
		return minAntiAgingRating
	case h.AntiAgingRating > maxAntiAgingRating:
		return maxAntiAgingRating
	}
	return h.AntiAgingRating
}

package achievement

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/banghuazhao/longevity-master-sub000/internal/model"
)

// Seed returns the default achievement catalog, all locked. The storage
// layer persists this once; afterwards only the evaluator's results flip
// the unlocked fields.
func Seed() []Achievement {
	return []Achievement{
		{ID: "first_check_in", Name: "First Step", Description: "Record your first check-in", Type: TypeMilestone, Criteria: Criteria{Target: 1}},
		{ID: "ten_check_ins", Name: "Getting Going", Description: "Record 10 check-ins", Type: TypeTotalCheckIns, Criteria: Criteria{Target: 10}},
		{ID: "hundred_check_ins", Name: "Centurion", Description: "Record 100 check-ins", Type: TypeTotalCheckIns, Criteria: Criteria{Target: 100}},
		{ID: "thousand_check_ins", Name: "Relentless", Description: "Record 1000 check-ins", Type: TypeMilestone, Criteria: Criteria{Target: 1000}},

		{ID: "streak_week", Name: "One Week Strong", Description: "Keep a 7-day streak on one habit", Type: TypeStreak, Criteria: Criteria{Target: 7}},
		{ID: "streak_month", Name: "Monthly Master", Description: "Keep a 30-day streak on one habit", Type: TypeStreak, Criteria: Criteria{Target: 30}},
		{ID: "consistency_three", Name: "Warming Up", Description: "Check in 3 days in a row", Type: TypeConsistency, Criteria: Criteria{Target: 3}},
		{ID: "consistency_twentyone", Name: "Habit Formed", Description: "Check in 21 days in a row", Type: TypeConsistency, Criteria: Criteria{Target: 21}},

		{ID: "perfect_week", Name: "Perfect Week", Description: "Complete every scheduled habit for a week", Type: TypePerfectWeek, Criteria: Criteria{Target: 1}},
		{ID: "perfect_month", Name: "Perfect Month", Description: "Complete every scheduled habit for a month", Type: TypePerfectMonth, Criteria: Criteria{Target: 1}},

		{ID: "diet_master", Name: "Diet Master", Description: "50 diet check-ins", Type: TypeCategoryMaster, Criteria: Criteria{Target: 50, Category: model.CategoryDiet}},
		{ID: "exercise_master", Name: "Exercise Master", Description: "50 exercise check-ins", Type: TypeCategoryMaster, Criteria: Criteria{Target: 50, Category: model.CategoryExercise}},
		{ID: "sleep_master", Name: "Sleep Master", Description: "50 sleep check-ins", Type: TypeCategoryMaster, Criteria: Criteria{Target: 50, Category: model.CategorySleep}},

		{ID: "early_bird", Name: "Early Bird", Description: "Check in before 8 AM", Type: TypeEarlyBird, Criteria: Criteria{Target: 1}},
		{ID: "night_owl", Name: "Night Owl", Description: "Check in after 10 PM", Type: TypeNightOwl, Criteria: Criteria{Target: 1}},
		{ID: "well_rounded", Name: "Well Rounded", Description: "Check in across 3 different categories", Type: TypeVariety, Criteria: Criteria{Target: 3}},
		{ID: "renaissance", Name: "Renaissance", Description: "Check in across all 5 categories", Type: TypeVariety, Criteria: Criteria{Target: 5}},
	}
}

// LoadCatalog reads an achievement catalog from a YAML file, for
// deployments that override the default seed. Entries with an unknown type
// or a non-positive target are rejected so a bad catalog is caught at load
// time rather than during evaluation.
func LoadCatalog(path string) ([]Achievement, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var catalog struct {
		Achievements []Achievement `yaml:"achievements"`
	}
	if err := yaml.Unmarshal(b, &catalog); err != nil {
		return nil, fmt.Errorf("parse achievement catalog: %w", err)
	}
	for _, a := range catalog.Achievements {
		if _, ok := predicates[a.Type]; !ok {
			return nil, fmt.Errorf("achievement %q: unknown type %q", a.ID, a.Type)
		}
		if a.Criteria.Target < 1 {
			return nil, fmt.Errorf("achievement %q: target must be at least 1", a.ID)
		}
	}
	return catalog.Achievements, nil
}

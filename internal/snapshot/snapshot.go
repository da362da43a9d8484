// Package snapshot reads the flat YAML export of habits, check-ins and
// achievements that the storage layer produces for offline inspection.
package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/banghuazhao/longevity-master-sub000/internal/achievement"
	"github.com/banghuazhao/longevity-master-sub000/internal/model"
)

// HabitRecord is a habit as the storage layer encodes it: the recurrence
// rule arrives as a kind tag plus a string detail ("2,4,6" or "3").
type HabitRecord struct {
	ID              int64          `yaml:"id"`
	Name            string         `yaml:"name"`
	Category        model.Category `yaml:"category"`
	Frequency       model.RuleKind `yaml:"frequency"`
	FrequencyDetail string         `yaml:"frequency_detail"`
	AntiAgingRating int            `yaml:"anti_aging_rating"`
	IsFavorite      bool           `yaml:"is_favorite"`
	IsArchived      bool           `yaml:"is_archived"`
}

// Habit converts the record into the engine's model. A malformed frequency
// detail degrades inside ParseFrequencyDetail rather than failing the load.
func (r HabitRecord) Habit() model.Habit {
	return model.Habit{
		ID:              r.ID,
		Name:            r.Name,
		Category:        r.Category,
		Rule:            model.ParseFrequencyDetail(r.Frequency, r.FrequencyDetail),
		AntiAgingRating: r.AntiAgingRating,
		IsFavorite:      r.IsFavorite,
		IsArchived:      r.IsArchived,
	}
}

// Snapshot is one consistent export of the user's data.
type Snapshot struct {
	Habits       []HabitRecord             `yaml:"habits"`
	CheckIns     []model.CheckIn           `yaml:"check_ins"`
	Achievements []achievement.Achievement `yaml:"achievements"`
}

// ModelHabits converts every habit record into the engine's model type.
func (s *Snapshot) ModelHabits() []model.Habit {
	habits := make([]model.Habit, 0, len(s.Habits))
	for _, r := range s.Habits {
		habits = append(habits, r.Habit())
	}
	return habits
}

// Load reads a snapshot from a YAML file.
func Load(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Snapshot
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &s, nil
}

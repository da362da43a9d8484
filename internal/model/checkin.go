package model

import "time"

// CheckIn records one completion event for a habit. Several check-ins may
// land on the same calendar day; day-level completion is derived by the
// calendar context, not stored here.
type CheckIn struct {
	ID        int64     `json:"id" yaml:"id"`
	HabitID   int64     `json:"habit_id" yaml:"habit_id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// ByHabit groups check-ins by owning habit.
func ByHabit(checkIns []CheckIn) map[int64][]CheckIn {
	out := make(map[int64][]CheckIn, len(checkIns))
	for _, c := range checkIns {
		out[c.HabitID] = append(out[c.HabitID], c)
	}
	return out
}

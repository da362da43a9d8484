package config

// ScoreWeights holds the tunable points and caps behind the wellness score.
type ScoreWeights struct {
	// Active habits
	PointsPerActiveHabit int `yaml:"points_per_active_habit" json:"points_per_active_habit"`
	ActiveHabitsCap      int `yaml:"active_habits_cap" json:"active_habits_cap"`

	// Anti-aging ratings
	PointsPerAntiAgingStar int `yaml:"points_per_anti_aging_star" json:"points_per_anti_aging_star"`
	AntiAgingCap           int `yaml:"anti_aging_cap" json:"anti_aging_cap"`

	// Achievements (cap is per-catalog: points x total defined)
	PointsPerAchievement int `yaml:"points_per_achievement" json:"points_per_achievement"`

	// Check-ins
	PointsPerCheckIn int `yaml:"points_per_check_in" json:"points_per_check_in"`
	CheckInsCap      int `yaml:"check_ins_cap" json:"check_ins_cap"`

	// Longest streak
	PointsPerStreakDay int `yaml:"points_per_streak_day" json:"points_per_streak_day"`
	StreakCap          int `yaml:"streak_cap" json:"streak_cap"`
}

// DefaultScoreWeights returns the standard balance.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		PointsPerActiveHabit:   10,
		ActiveHabitsCap:        300,
		PointsPerAntiAgingStar: 2,
		AntiAgingCap:           300,
		PointsPerAchievement:   10,
		PointsPerCheckIn:       2,
		CheckInsCap:            200,
		PointsPerStreakDay:     2,
		StreakCap:              250,
	}
}

// ApplyDefaults fills zero fields with the standard balance.
func (w *ScoreWeights) ApplyDefaults() {
	def := DefaultScoreWeights()
	if w.PointsPerActiveHabit == 0 {
		w.PointsPerActiveHabit = def.PointsPerActiveHabit
	}
	if w.ActiveHabitsCap == 0 {
		w.ActiveHabitsCap = def.ActiveHabitsCap
	}
	if w.PointsPerAntiAgingStar == 0 {
		w.PointsPerAntiAgingStar = def.PointsPerAntiAgingStar
	}
	if w.AntiAgingCap == 0 {
		w.AntiAgingCap = def.AntiAgingCap
	}
	if w.PointsPerAchievement == 0 {
		w.PointsPerAchievement = def.PointsPerAchievement
	}
	if w.PointsPerCheckIn == 0 {
		w.PointsPerCheckIn = def.PointsPerCheckIn
	}
	if w.CheckInsCap == 0 {
		w.CheckInsCap = def.CheckInsCap
	}
	if w.PointsPerStreakDay == 0 {
		w.PointsPerStreakDay = def.PointsPerStreakDay
	}
	if w.StreakCap == 0 {
		w.StreakCap = def.StreakCap
	}
}

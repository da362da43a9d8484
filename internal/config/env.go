package config

import (
	"os"
	"strconv"
)

// FromEnv loads configuration from environment variables, falling back to
// defaults for anything unset.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("LM_FIRST_WEEKDAY"); v == "sunday" || v == "monday" {
		cfg.FirstWeekday = v
	}
	if v := getEnvInt("LM_POINTS_PER_ACTIVE_HABIT"); v > 0 {
		cfg.Score.PointsPerActiveHabit = v
	}
	if v := getEnvInt("LM_ACTIVE_HABITS_CAP"); v > 0 {
		cfg.Score.ActiveHabitsCap = v
	}
	if v := getEnvInt("LM_POINTS_PER_ANTI_AGING_STAR"); v > 0 {
		cfg.Score.PointsPerAntiAgingStar = v
	}
	if v := getEnvInt("LM_ANTI_AGING_CAP"); v > 0 {
		cfg.Score.AntiAgingCap = v
	}
	if v := getEnvInt("LM_POINTS_PER_ACHIEVEMENT"); v > 0 {
		cfg.Score.PointsPerAchievement = v
	}
	if v := getEnvInt("LM_POINTS_PER_CHECK_IN"); v > 0 {
		cfg.Score.PointsPerCheckIn = v
	}
	if v := getEnvInt("LM_CHECK_INS_CAP"); v > 0 {
		cfg.Score.CheckInsCap = v
	}
	if v := getEnvInt("LM_POINTS_PER_STREAK_DAY"); v > 0 {
		cfg.Score.PointsPerStreakDay = v
	}
	if v := getEnvInt("LM_STREAK_CAP"); v > 0 {
		cfg.Score.StreakCap = v
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/banghuazhao/longevity-master-sub000/internal/calendar"
)

// Config holds the engine configuration supplied by the hosting system.
type Config struct {
	// FirstWeekday is "sunday" or "monday".
	FirstWeekday string       `yaml:"first_weekday" json:"first_weekday"`
	Score        ScoreWeights `yaml:"score" json:"score"`
}

// ApplyDefaults fills zero values with the defaults.
func (c *Config) ApplyDefaults() {
	if c.FirstWeekday == "" {
		c.FirstWeekday = "monday"
	}
	c.Score.ApplyDefaults()
}

// Calendar builds the calendar context for the configured first weekday.
// Anything other than "sunday" starts weeks on Monday.
func (c *Config) Calendar() calendar.Context {
	if c.FirstWeekday == "sunday" {
		return calendar.Sunday()
	}
	return calendar.Monday()
}

// Default returns the default configuration.
func Default() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load reads configuration from a YAML file and applies defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ApplyDefaults()
	if cfg.FirstWeekday != "sunday" && cfg.FirstWeekday != "monday" {
		return nil, fmt.Errorf("first_weekday must be sunday or monday, got %q", cfg.FirstWeekday)
	}
	return &cfg, nil
}

package model

import (
	"slices"
	"strconv"
	"strings"
)

// RuleKind tags the recurrence rule union.
type RuleKind string

const (
	// KindFixedDaysInWeek schedules fixed weekdays (1=Sunday .. 7=Saturday).
	KindFixedDaysInWeek RuleKind = "fixed_days_in_week"
	// KindFixedDaysInMonth schedules fixed days of the month (1..28).
	KindFixedDaysInMonth RuleKind = "fixed_days_in_month"
	// KindNPerWeek requires n completions per week on any days.
	KindNPerWeek RuleKind = "n_per_week"
	// KindNPerMonth requires n completions per month on any days.
	KindNPerMonth RuleKind = "n_per_month"
)

const (
	minWeekday  = 1
	maxWeekday  = 7
	minMonthDay = 1
	maxMonthDay = 28
)

// Rule is a habit's recurrence policy. Exactly one payload is meaningful
// per kind: Days for the fixed kinds, N for the quota kinds. Construct via
// the constructors or ParseFrequencyDetail so the payload is always valid.
type Rule struct {
	Kind RuleKind `json:"kind" yaml:"kind"`
	Days []int    `json:"days,omitempty" yaml:"days,omitempty"`
	N    int      `json:"n,omitempty" yaml:"n,omitempty"`
}

// FixedDaysInWeek builds a weekday rule. Out-of-range days are dropped and
// duplicates collapsed; an empty result means the habit is never scheduled.
func FixedDaysInWeek(days ...int) Rule {
	return Rule{Kind: KindFixedDaysInWeek, Days: normalizeDays(days, minWeekday, maxWeekday)}
}

// FixedDaysInMonth builds a day-of-month rule over days 1..28.
func FixedDaysInMonth(days ...int) Rule {
	return Rule{Kind: KindFixedDaysInMonth, Days: normalizeDays(days, minMonthDay, maxMonthDay)}
}

// NPerWeek builds a weekly quota rule. n below 1 is floored to 1.
func NPerWeek(n int) Rule {
	return Rule{Kind: KindNPerWeek, N: floorQuota(n)}
}

// NPerMonth builds a monthly quota rule. n below 1 is floored to 1.
func NPerMonth(n int) Rule {
	return Rule{Kind: KindNPerMonth, N: floorQuota(n)}
}

// IsQuota reports whether the rule is quota-based rather than fixed-day.
func (r Rule) IsQuota() bool {
	return r.Kind == KindNPerWeek || r.Kind == KindNPerMonth
}

// Quota returns the per-period target for quota rules, floored to 1.
func (r Rule) Quota() int {
	return floorQuota(r.N)
}

// HasDay reports whether day is in the rule's fixed day set.
func (r Rule) HasDay(day int) bool {
	return slices.Contains(r.Days, day)
}

// ParseFrequencyDetail decodes the storage layer's string-encoded rule
// detail: a comma-separated day list for the fixed kinds ("2,4,6"), a bare
// integer for the quota kinds ("3"). Malformed input never fails; it
// degrades to an empty day set or a quota of 1.
func ParseFrequencyDetail(kind RuleKind, detail string) Rule {
	switch kind {
	case KindFixedDaysInWeek:
		return FixedDaysInWeek(parseDayList(detail)...)
	case KindFixedDaysInMonth:
		return FixedDaysInMonth(parseDayList(detail)...)
	case KindNPerWeek:
		return NPerWeek(parseQuota(detail))
	case KindNPerMonth:
		return NPerMonth(parseQuota(detail))
	}
	// Unknown kind: treat as a never-scheduled fixed rule.
	return Rule{Kind: kind}
}

func parseDayList(detail string) []int {
	var days []int
	for _, part := range strings.Split(detail, ",") {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	return days
}

func parseQuota(detail string) int {
	n, err := strconv.Atoi(strings.TrimSpace(detail))
	if err != nil {
		return 1
	}
	return n
}

func normalizeDays(days []int, min, max int) []int {
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < min || d > max {
			continue
		}
		if !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	slices.Sort(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

func floorQuota(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

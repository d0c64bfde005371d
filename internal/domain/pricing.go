package domain

import (
	"strconv"
	"strings"
	"time"
)

// PricingRuleType represents the kind of a pricing rule
type PricingRuleType string

const (
	RuleWeekend  PricingRuleType = "WEEKEND"
	RulePeakHour PricingRuleType = "PEAK_HOUR"
)

// PricingRule represents a surcharge or multiplier policy.
// Поля заполняются в зависимости от типа правила:
// WEEKEND использует Surcharge и Days, PEAK_HOUR - Multiplier, StartTime и EndTime.
type PricingRule struct {
	ID         string
	Name       string
	Type       PricingRuleType
	Multiplier float64
	Surcharge  float64
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Days       []int  // 0=Sunday .. 6=Saturday
}

// AppliesToWeekday returns true if the rule's day set contains the given date's weekday.
// Дни недели считаются в той же конвенции, что и time.Weekday: 0=воскресенье.
func (r *PricingRule) AppliesToWeekday(date time.Time) bool {
	day := int(date.Weekday())
	for _, d := range r.Days {
		if d == day {
			return true
		}
	}
	return false
}

// WindowHours parses the rule's StartTime/EndTime into integer hours.
// Минуты окна отбрасываются: окно "18:00"-"21:00" становится [18, 21).
func (r *PricingRule) WindowHours() (int, int, bool) {
	start, ok := parseHour(r.StartTime)
	if !ok {
		return 0, 0, false
	}
	end, ok := parseHour(r.EndTime)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

func parseHour(s string) (int, bool) {
	hh, _, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// PricingBreakdown is the itemized price attached to a booking at creation.
// Значение замораживается вместе с бронированием и больше не пересчитывается.
type PricingBreakdown struct {
	BasePrice    float64
	WeekendFee   float64
	PeakHourFee  float64
	EquipmentFee float64
	CoachFee     float64
	Total        float64
}

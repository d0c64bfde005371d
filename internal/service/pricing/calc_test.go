package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

var (
	testCourt = &domain.Court{ID: "c1", Name: "Badminton Court A", Type: domain.CourtIndoor, BasePrice: 20}

	weekendRule = &domain.PricingRule{
		ID:        "r1",
		Name:      "Weekend Surcharge",
		Type:      domain.RuleWeekend,
		Surcharge: 5,
		Days:      []int{0, 6},
	}

	peakRule = &domain.PricingRule{
		ID:         "r2",
		Name:       "Peak Hour Multiplier",
		Type:       domain.RulePeakHour,
		Multiplier: 1.5,
		StartTime:  "18:00",
		EndTime:    "21:00",
	}

	testEquipment = []*domain.Equipment{
		{ID: "eq1", Name: domain.EquipmentRacket, TotalStock: 20, PricePerSession: 5},
		{ID: "eq2", Name: domain.EquipmentShoes, TotalStock: 10, PricePerSession: 3},
	}

	saturday = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
)

func TestComputeBreakdown_BasePrice(t *testing.T) {
	b := computeBreakdown(testCourt, tuesday, 10, 12, domain.BookingResources{}, nil, nil, nil)

	assert.Equal(t, 40.0, b.BasePrice)
	assert.Equal(t, 0.0, b.WeekendFee)
	assert.Equal(t, 0.0, b.PeakHourFee)
	assert.Equal(t, 0.0, b.EquipmentFee)
	assert.Equal(t, 0.0, b.CoachFee)
	assert.Equal(t, 40.0, b.Total)
}

func TestComputeBreakdown_WeekendFee(t *testing.T) {
	rules := []*domain.PricingRule{weekendRule}

	t.Run("saturday applies surcharge per hour", func(t *testing.T) {
		b := computeBreakdown(testCourt, saturday, 10, 12, domain.BookingResources{}, rules, nil, nil)

		assert.Equal(t, 10.0, b.WeekendFee)
		assert.Equal(t, 50.0, b.Total)
	})

	t.Run("sunday applies surcharge", func(t *testing.T) {
		sunday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		b := computeBreakdown(testCourt, sunday, 10, 11, domain.BookingResources{}, rules, nil, nil)

		assert.Equal(t, 5.0, b.WeekendFee)
	})

	t.Run("weekday is free of surcharge", func(t *testing.T) {
		b := computeBreakdown(testCourt, tuesday, 10, 12, domain.BookingResources{}, rules, nil, nil)

		assert.Equal(t, 0.0, b.WeekendFee)
	})
}

func TestComputeBreakdown_PeakHourFee(t *testing.T) {
	rules := []*domain.PricingRule{peakRule}

	t.Run("partial overlap charges full multiplier", func(t *testing.T) {
		// Пересечение с пиковым окном любой длины применяет
		// множитель ко всей базовой цене, без пропорции
		b := computeBreakdown(testCourt, tuesday, 17, 19, domain.BookingResources{}, rules, nil, nil)

		assert.Equal(t, 40.0, b.BasePrice)
		assert.Equal(t, 20.0, b.PeakHourFee)
		assert.Equal(t, 60.0, b.Total)
	})

	t.Run("slot fully inside the window", func(t *testing.T) {
		b := computeBreakdown(testCourt, tuesday, 18, 19, domain.BookingResources{}, rules, nil, nil)

		assert.Equal(t, 20.0, b.BasePrice)
		assert.Equal(t, 10.0, b.PeakHourFee)
	})

	t.Run("no overlap means no fee", func(t *testing.T) {
		b := computeBreakdown(testCourt, tuesday, 14, 16, domain.BookingResources{}, rules, nil, nil)

		assert.Equal(t, 0.0, b.PeakHourFee)
	})

	t.Run("slot ending at window start is not peak", func(t *testing.T) {
		b := computeBreakdown(testCourt, tuesday, 16, 18, domain.BookingResources{}, rules, nil, nil)

		assert.Equal(t, 0.0, b.PeakHourFee)
	})
}

func TestComputeBreakdown_EquipmentFee(t *testing.T) {
	t.Run("rackets and shoes priced from catalog", func(t *testing.T) {
		resources := domain.BookingResources{Rackets: 2, Shoes: 1}
		b := computeBreakdown(testCourt, tuesday, 10, 11, resources, nil, testEquipment, nil)

		assert.Equal(t, 13.0, b.EquipmentFee)
	})

	t.Run("missing catalog item costs zero", func(t *testing.T) {
		resources := domain.BookingResources{Rackets: 2, Shoes: 1}
		b := computeBreakdown(testCourt, tuesday, 10, 11, resources, nil, nil, nil)

		assert.Equal(t, 0.0, b.EquipmentFee)
	})

	t.Run("no equipment requested", func(t *testing.T) {
		b := computeBreakdown(testCourt, tuesday, 10, 11, domain.BookingResources{}, nil, testEquipment, nil)

		assert.Equal(t, 0.0, b.EquipmentFee)
	})
}

func TestComputeBreakdown_CoachFee(t *testing.T) {
	coach := &domain.Coach{ID: "ch1", Name: "John Doe", Specialty: "Badminton", HourlyRate: 25}

	t.Run("coach charged per hour", func(t *testing.T) {
		b := computeBreakdown(testCourt, tuesday, 10, 12, domain.BookingResources{}, nil, nil, coach)

		assert.Equal(t, 50.0, b.CoachFee)
	})

	t.Run("nil coach costs zero", func(t *testing.T) {
		b := computeBreakdown(testCourt, tuesday, 10, 12, domain.BookingResources{}, nil, nil, nil)

		assert.Equal(t, 0.0, b.CoachFee)
	})
}

func TestComputeBreakdown_AllFeesCombined(t *testing.T) {
	coach := &domain.Coach{ID: "ch1", Name: "John Doe", Specialty: "Badminton", HourlyRate: 25}
	rules := []*domain.PricingRule{weekendRule, peakRule}
	resources := domain.BookingResources{Rackets: 2, Shoes: 1}

	// Суббота, 18-20: база 40, выходной 10, пик 20, инвентарь 13, тренер 50
	b := computeBreakdown(testCourt, saturday, 18, 20, resources, rules, testEquipment, coach)

	assert.Equal(t, 40.0, b.BasePrice)
	assert.Equal(t, 10.0, b.WeekendFee)
	assert.Equal(t, 20.0, b.PeakHourFee)
	assert.Equal(t, 13.0, b.EquipmentFee)
	assert.Equal(t, 50.0, b.CoachFee)
	assert.Equal(t, 133.0, b.Total)
}

func TestComputeBreakdown_Deterministic(t *testing.T) {
	rules := []*domain.PricingRule{weekendRule, peakRule}
	resources := domain.BookingResources{Rackets: 1, Shoes: 1}

	first := computeBreakdown(testCourt, saturday, 18, 20, resources, rules, testEquipment, nil)
	second := computeBreakdown(testCourt, saturday, 18, 20, resources, rules, testEquipment, nil)

	assert.Equal(t, first, second)
}

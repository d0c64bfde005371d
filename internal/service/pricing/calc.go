package pricing

import (
	"time"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

// computeBreakdown вычисляет детализацию цены.
// Чистая функция от своих аргументов: одинаковые входные данные
// всегда дают одинаковую детализацию.
func computeBreakdown(
	court *domain.Court,
	date time.Time,
	startHour, endHour int,
	resources domain.BookingResources,
	rules []*domain.PricingRule,
	equipment []*domain.Equipment,
	coach *domain.Coach,
) domain.PricingBreakdown {
	duration := endHour - startHour
	basePrice := court.BasePrice * float64(duration)

	// 1. Надбавка за выходной день
	var weekendFee float64
	if rule := findRule(rules, domain.RuleWeekend); rule != nil && rule.AppliesToWeekday(date) {
		weekendFee = rule.Surcharge * float64(duration)
	}

	// 2. Надбавка за пиковые часы.
	// Политика "все или ничего": любое пересечение с пиковым окном
	// применяет множитель ко ВСЕЙ базовой цене, без пропорции по часам.
	var peakHourFee float64
	if rule := findRule(rules, domain.RulePeakHour); rule != nil {
		if peakStart, peakEnd, ok := rule.WindowHours(); ok {
			if domain.HoursOverlap(startHour, endHour, peakStart, peakEnd) {
				peakHourFee = basePrice*rule.Multiplier - basePrice
			}
		}
	}

	// 3. Инвентарь. Отсутствующая в каталоге позиция стоит 0.
	racketPrice := findEquipmentPrice(equipment, domain.EquipmentRacket)
	shoesPrice := findEquipmentPrice(equipment, domain.EquipmentShoes)
	equipmentFee := float64(resources.Rackets)*racketPrice + float64(resources.Shoes)*shoesPrice

	// 4. Тренер. Неизвестный тренер стоит 0, это не ошибка.
	var coachFee float64
	if coach != nil {
		coachFee = coach.HourlyRate * float64(duration)
	}

	return domain.PricingBreakdown{
		BasePrice:    basePrice,
		WeekendFee:   weekendFee,
		PeakHourFee:  peakHourFee,
		EquipmentFee: equipmentFee,
		CoachFee:     coachFee,
		Total:        basePrice + weekendFee + peakHourFee + equipmentFee + coachFee,
	}
}

// findRule возвращает первое правило указанного типа или nil
func findRule(rules []*domain.PricingRule, ruleType domain.PricingRuleType) *domain.PricingRule {
	for _, r := range rules {
		if r.Type == ruleType {
			return r
		}
	}
	return nil
}

// findEquipmentPrice возвращает цену позиции каталога по имени, 0 если позиции нет
func findEquipmentPrice(equipment []*domain.Equipment, name string) float64 {
	for _, e := range equipment {
		if e.Name == name {
			return e.PricePerSession
		}
	}
	return 0
}

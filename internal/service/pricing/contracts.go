package pricing

import (
	"context"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

// CourtProvider источник данных о кортах
type CourtProvider interface {
	GetByID(ctx context.Context, id string) (*domain.Court, error)
}

// CoachProvider источник данных о тренерах
type CoachProvider interface {
	GetByID(ctx context.Context, id string) (*domain.Coach, error)
}

// EquipmentProvider источник каталога инвентаря
type EquipmentProvider interface {
	List(ctx context.Context) ([]*domain.Equipment, error)
}

// RuleProvider источник правил ценообразования
type RuleProvider interface {
	List(ctx context.Context) ([]*domain.PricingRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package catalog

import (
	"context"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

// CourtProvider источник данных о кортах
type CourtProvider interface {
	List(ctx context.Context) ([]*domain.Court, error)
}

// CoachProvider источник данных о тренерах
type CoachProvider interface {
	List(ctx context.Context) ([]*domain.Coach, error)
}

// EquipmentProvider источник каталога инвентаря
type EquipmentProvider interface {
	List(ctx context.Context) ([]*domain.Equipment, error)
}

// EquipmentRepository репозиторий каталога инвентаря
type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error)
}

// RuleProvider источник правил ценообразования
type RuleProvider interface {
	List(ctx context.Context) ([]*domain.PricingRule, error)
}

// CacheInvalidator сбрасывает кэш каталога инвентаря после изменения.
// Реализация опциональна: без кэша сервис работает с nil.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

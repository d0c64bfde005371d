package refcache

import (
	"context"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	coachRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/coach"
	courtRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/court"
)

// CourtSource источник данных о кортах
type CourtSource interface {
	List(ctx context.Context) ([]*domain.Court, error)
}

// CoachSource источник данных о тренерах
type CoachSource interface {
	List(ctx context.Context) ([]*domain.Coach, error)
}

// EquipmentSource источник данных каталога инвентаря
type EquipmentSource interface {
	List(ctx context.Context) ([]*domain.Equipment, error)
}

// RuleSource источник правил ценообразования
type RuleSource interface {
	List(ctx context.Context) ([]*domain.PricingRule, error)
}

// Courts кэширующий декоратор репозитория кортов
type Courts struct {
	cache  *Cache
	source CourtSource
}

// NewCourts создает кэширующий декоратор для кортов
func NewCourts(cache *Cache, source CourtSource) *Courts {
	return &Courts{cache: cache, source: source}
}

// List получает все корты через кэш
func (c *Courts) List(ctx context.Context) ([]*domain.Court, error) {
	return getList(ctx, c.cache, keyCourts, c.source.List)
}

// GetByID находит корт в кэшированной коллекции.
// Справочник маленький, поэтому поиск по списку дешевле отдельного запроса.
func (c *Courts) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	courts, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, court := range courts {
		if court.ID == id {
			return court, nil
		}
	}
	return nil, courtRepo.ErrCourtNotFound
}

// Coaches кэширующий декоратор репозитория тренеров
type Coaches struct {
	cache  *Cache
	source CoachSource
}

// NewCoaches создает кэширующий декоратор для тренеров
func NewCoaches(cache *Cache, source CoachSource) *Coaches {
	return &Coaches{cache: cache, source: source}
}

// List получает всех тренеров через кэш
func (c *Coaches) List(ctx context.Context) ([]*domain.Coach, error) {
	return getList(ctx, c.cache, keyCoaches, c.source.List)
}

// GetByID находит тренера в кэшированной коллекции
func (c *Coaches) GetByID(ctx context.Context, id string) (*domain.Coach, error) {
	coaches, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, coach := range coaches {
		if coach.ID == id {
			return coach, nil
		}
	}
	return nil, coachRepo.ErrCoachNotFound
}

// Equipment кэширующий декоратор каталога инвентаря
type Equipment struct {
	cache  *Cache
	source EquipmentSource
}

// NewEquipment создает кэширующий декоратор для инвентаря
func NewEquipment(cache *Cache, source EquipmentSource) *Equipment {
	return &Equipment{cache: cache, source: source}
}

// List получает каталог инвентаря через кэш
func (e *Equipment) List(ctx context.Context) ([]*domain.Equipment, error) {
	return getList(ctx, e.cache, keyEquipment, e.source.List)
}

// Invalidate сбрасывает кэш каталога.
// Вызывается после добавления новой позиции админом.
func (e *Equipment) Invalidate(ctx context.Context) error {
	return e.cache.client.Del(ctx, keyEquipment).Err()
}

// Rules кэширующий декоратор правил ценообразования
type Rules struct {
	cache  *Cache
	source RuleSource
}

// NewRules создает кэширующий декоратор для правил
func NewRules(cache *Cache, source RuleSource) *Rules {
	return &Rules{cache: cache, source: source}
}

// List получает все правила через кэш
func (r *Rules) List(ctx context.Context) ([]*domain.PricingRule, error) {
	return getList(ctx, r.cache, keyRules, r.source.List)
}

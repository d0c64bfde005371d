package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

// Service отдает справочные данные и управляет каталогом инвентаря
type Service struct {
	courts      CourtProvider
	coaches     CoachProvider
	equipment   EquipmentProvider
	equipRepo   EquipmentRepository
	rules       RuleProvider
	invalidator CacheInvalidator // nil, если кэш отключен
	logger      Logger
}

// NewService создает новый сервис справочных данных
func NewService(
	courts CourtProvider,
	coaches CoachProvider,
	equipment EquipmentProvider,
	equipRepo EquipmentRepository,
	rules RuleProvider,
	invalidator CacheInvalidator,
	logger Logger,
) *Service {
	return &Service{
		courts:      courts,
		coaches:     coaches,
		equipment:   equipment,
		equipRepo:   equipRepo,
		rules:       rules,
		invalidator: invalidator,
		logger:      logger,
	}
}

// ListCourts возвращает все корты
func (s *Service) ListCourts(ctx context.Context) ([]*domain.Court, error) {
	courts, err := s.courts.List(ctx)
	if err != nil {
		s.logger.Error("ListCourts: %v", err)
		return nil, fmt.Errorf("%w: ListCourts: %v", ErrInternal, err)
	}
	return courts, nil
}

// ListCoaches возвращает всех тренеров
func (s *Service) ListCoaches(ctx context.Context) ([]*domain.Coach, error) {
	coaches, err := s.coaches.List(ctx)
	if err != nil {
		s.logger.Error("ListCoaches: %v", err)
		return nil, fmt.Errorf("%w: ListCoaches: %v", ErrInternal, err)
	}
	return coaches, nil
}

// ListEquipment возвращает каталог инвентаря
func (s *Service) ListEquipment(ctx context.Context) ([]*domain.Equipment, error) {
	items, err := s.equipment.List(ctx)
	if err != nil {
		s.logger.Error("ListEquipment: %v", err)
		return nil, fmt.Errorf("%w: ListEquipment: %v", ErrInternal, err)
	}
	return items, nil
}

// ListPricingRules возвращает правила ценообразования
func (s *Service) ListPricingRules(ctx context.Context) ([]*domain.PricingRule, error) {
	rules, err := s.rules.List(ctx)
	if err != nil {
		s.logger.Error("ListPricingRules: %v", err)
		return nil, fmt.Errorf("%w: ListPricingRules: %v", ErrInternal, err)
	}
	return rules, nil
}

// AddEquipmentRequest параметры добавления позиции инвентаря
type AddEquipmentRequest struct {
	Name            string
	TotalStock      int
	PricePerSession float64
}

// AddEquipment добавляет новую позицию в каталог инвентаря.
// Каталог append-only: существующие позиции не изменяются и не удаляются.
func (s *Service) AddEquipment(ctx context.Context, req *AddEquipmentRequest) (*domain.Equipment, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: equipment name is required", ErrInvalidInput)
	}
	if req.TotalStock < 0 {
		return nil, fmt.Errorf("%w: totalStock must not be negative", ErrInvalidInput)
	}
	if req.PricePerSession < 0 {
		return nil, fmt.Errorf("%w: pricePerSession must not be negative", ErrInvalidInput)
	}

	item := &domain.Equipment{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		TotalStock:      req.TotalStock,
		PricePerSession: req.PricePerSession,
	}

	created, err := s.equipRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("AddEquipment: failed to create %s: %v", item.Name, err)
		return nil, fmt.Errorf("%w: AddEquipment: %v", ErrInternal, err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx); err != nil {
			// Кэш истечет по TTL, поэтому ошибка инвалидации не фатальна
			s.logger.Warn("AddEquipment: failed to invalidate equipment cache: %v", err)
		}
	}

	s.logger.Info("AddEquipment: created equipment id=%s name=%s", created.ID, created.Name)
	return created, nil
}

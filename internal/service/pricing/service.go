package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	coachRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/coach"
	courtRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/court"
)

// Request параметры расчета цены
type Request struct {
	CourtID   string
	Date      time.Time
	StartHour int
	EndHour   int
	Resources domain.BookingResources
}

// Service рассчитывает детализацию цены бронирования.
// Не имеет побочных эффектов: используется и для предпросмотра цены,
// и внутри создания бронирования.
type Service struct {
	courts    CourtProvider
	coaches   CoachProvider
	equipment EquipmentProvider
	rules     RuleProvider
	logger    Logger
}

// NewService создает новый сервис расчета цены
func NewService(
	courts CourtProvider,
	coaches CoachProvider,
	equipment EquipmentProvider,
	rules RuleProvider,
	logger Logger,
) *Service {
	return &Service{
		courts:    courts,
		coaches:   coaches,
		equipment: equipment,
		rules:     rules,
		logger:    logger,
	}
}

// Calculate возвращает детализацию цены для запрошенного слота и ресурсов
func (s *Service) Calculate(ctx context.Context, req *Request) (*domain.PricingBreakdown, error) {
	court, err := s.courts.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("CalculatePrice: court %s not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("CalculatePrice: failed to get court %s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	rules, err := s.rules.List(ctx)
	if err != nil {
		s.logger.Error("CalculatePrice: failed to get pricing rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}

	equipment, err := s.equipment.List(ctx)
	if err != nil {
		s.logger.Error("CalculatePrice: failed to get equipment catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to get equipment catalog: %v", ErrInternal, err)
	}

	// Тренер опционален. Неразрешимый тренер не ошибка: услуга просто не тарифицируется.
	var coach *domain.Coach
	if req.Resources.HasCoach() {
		coach, err = s.coaches.GetByID(ctx, *req.Resources.CoachID)
		if err != nil {
			if !errors.Is(err, coachRepo.ErrCoachNotFound) {
				s.logger.Error("CalculatePrice: failed to get coach %s: %v", *req.Resources.CoachID, err)
				return nil, fmt.Errorf("%w: failed to get coach: %v", ErrInternal, err)
			}
			s.logger.Warn("CalculatePrice: coach %s not found, coach fee skipped", *req.Resources.CoachID)
			coach = nil
		}
	}

	breakdown := computeBreakdown(court, req.Date, req.StartHour, req.EndHour, req.Resources, rules, equipment, coach)

	return &breakdown, nil
}

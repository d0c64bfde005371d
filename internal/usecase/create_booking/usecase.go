package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/availability"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/pricing"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	checker      AvailabilityChecker
	calculator   PriceCalculator
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	checker AvailabilityChecker,
	calculator PriceCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		checker:      checker,
		calculator:   calculator,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности, расчет цены и вставка выполняются в одной
// сериализуемой транзакции: проверка блокирует бронирования дня, поэтому два
// конкурентных запроса на один слот не могут оба пройти проверку и записаться.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, court=%s, date=%s, hours=%d-%d",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartHour, req.EndHour)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Проверка доступности и запись в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем доступность корта и тренера
		check, err := uc.checker.Check(txCtx, &availability.Request{
			Date:      req.Date,
			StartHour: req.StartHour,
			EndHour:   req.EndHour,
			CourtID:   req.CourtID,
			CoachID:   req.CoachID,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		if !check.Available {
			uc.logger.Warn("CreateBooking: slot not available: %s", check.Reason)
			return &SlotUnavailableError{Reason: check.Reason}
		}

		// 2.2. Рассчитываем цену. Здесь же разрешается корт:
		// несуществующий корт означает ошибку NotFound.
		resources := domain.BookingResources{
			Rackets: req.Rackets,
			Shoes:   req.Shoes,
			CoachID: req.CoachID,
		}

		breakdown, err := uc.calculator.Calculate(txCtx, &pricing.Request{
			CourtID:   req.CourtID,
			Date:      req.Date,
			StartHour: req.StartHour,
			EndHour:   req.EndHour,
			Resources: resources,
		})
		if err != nil {
			if errors.Is(err, pricing.ErrCourtNotFound) {
				uc.logger.Warn("CreateBooking: court %s not found", req.CourtID)
				return ErrCourtNotFound
			}
			uc.logger.Error("CreateBooking: price calculation failed: %v", err)
			return fmt.Errorf("%w: price calculation failed: %v", ErrInternal, err)
		}

		// 2.3. Создаем бронирование
		booking := &domain.Booking{
			ID:        uuid.NewString(),
			UserID:    req.UserID,
			CourtID:   req.CourtID,
			Date:      req.Date,
			StartHour: req.StartHour,
			EndHour:   req.EndHour,
			Resources: resources,
			Status:    domain.StatusConfirmed,
			Pricing:   *breakdown,
			CreatedAt: uc.timeProvider.Now(),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s total=%.2f",
		result.ID, result.Pricing.Total)

	return fromDomain(result), nil
}

package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

// Причины недоступности слота. Тексты отдаются клиенту как есть.
const (
	ReasonCourtConflict = "Court is already booked for this time slot."
	ReasonCoachConflict = "Selected coach is unavailable at this time."
)

// Request параметры проверки доступности слота
type Request struct {
	Date      time.Time
	StartHour int
	EndHour   int
	CourtID   string
	CoachID   *string // nil, если тренер не запрошен
}

// Result результат проверки доступности
type Result struct {
	Available bool
	Reason    string // заполнен, только когда Available = false
}

// Service проверяет доступность корта и тренера на запрошенный слот.
// Операция только читает данные и безопасна для повторных вызовов.
// Внутри транзакции чтение блокирует строки дня (FOR UPDATE в репозитории),
// что закрывает гонку между проверкой и вставкой бронирования.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый сервис проверки доступности
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Check проверяет слот на пересечения с подтвержденными бронированиями.
// Сначала проверяется корт, затем тренер: при конфликте обоих
// возвращается причина по корту.
func (s *Service) Check(ctx context.Context, req *Request) (*Result, error) {
	bookings, err := s.bookingRepo.GetConfirmedByDate(ctx, req.Date)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to get bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("availability: failed to get bookings: %w", err)
	}

	// 1. Пересечение по корту
	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		if b.CourtID == req.CourtID && b.Overlaps(req.StartHour, req.EndHour) {
			s.logger.Info("CheckAvailability: court %s busy on %s %02d:00-%02d:00 (booking %s)",
				req.CourtID, req.Date.Format(domain.DateFormat), req.StartHour, req.EndHour, b.ID)
			return &Result{Available: false, Reason: ReasonCourtConflict}, nil
		}
	}

	// 2. Пересечение по тренеру, независимо от корта
	if req.CoachID != nil && *req.CoachID != "" {
		for _, b := range bookings {
			if !b.IsConfirmed() || !b.Resources.HasCoach() {
				continue
			}
			if *b.Resources.CoachID == *req.CoachID && b.Overlaps(req.StartHour, req.EndHour) {
				s.logger.Info("CheckAvailability: coach %s busy on %s %02d:00-%02d:00 (booking %s)",
					*req.CoachID, req.Date.Format(domain.DateFormat), req.StartHour, req.EndHour, b.ID)
				return &Result{Available: false, Reason: ReasonCoachConflict}, nil
			}
		}
	}

	return &Result{Available: true}, nil
}

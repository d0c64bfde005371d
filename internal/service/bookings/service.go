package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	bookingRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/booking"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)

// Service сервис чтения бронирований.
// Бронирования неизменяемы, поэтому сервис предоставляет только чтение.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List возвращает все бронирования, новые первыми
func (s *Service) List(ctx context.Context) ([]*domain.Booking, error) {
	list, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return list, nil
}

// GetByID возвращает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetBooking: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return b, nil
}

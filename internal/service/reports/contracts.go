package reports

import (
	"context"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

// BookingSource источник данных о бронированиях
type BookingSource interface {
	List(ctx context.Context) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

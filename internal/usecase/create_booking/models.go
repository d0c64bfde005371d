package create_booking

import (
	"time"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    string
	CourtID   string
	Date      time.Time // дата бронирования (без времени)
	StartHour int       // включительно
	EndHour   int       // не включительно
	Rackets   int
	Shoes     int
	CoachID   *string // опционально
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string
	UserID    string
	CourtID   string
	Date      time.Time
	StartHour int
	EndHour   int
	Rackets   int
	Shoes     int
	CoachID   *string
	Status    string
	Pricing   domain.PricingBreakdown
	CreatedAt time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:        b.ID,
		UserID:    b.UserID,
		CourtID:   b.CourtID,
		Date:      b.Date,
		StartHour: b.StartHour,
		EndHour:   b.EndHour,
		Rackets:   b.Resources.Rackets,
		Shoes:     b.Resources.Shoes,
		CoachID:   b.Resources.CoachID,
		Status:    string(b.Status),
		Pricing:   b.Pricing,
		CreatedAt: b.CreatedAt,
	}
}

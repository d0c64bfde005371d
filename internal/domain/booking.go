package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusWaitlist  BookingStatus = "waitlist"
)

// BookingResources описывает дополнительные ресурсы, запрошенные при бронировании
type BookingResources struct {
	Rackets int
	Shoes   int
	CoachID *string // nil, если тренер не запрошен
}

// HasCoach returns true if a coach was requested
func (r BookingResources) HasCoach() bool {
	return r.CoachID != nil && *r.CoachID != ""
}

// Booking represents a confirmed court reservation.
// Записи неизменяемы после создания: редактирование и отмена не поддерживаются.
type Booking struct {
	ID        string
	UserID    string
	CourtID   string
	Date      time.Time // календарный день, время обнулено
	StartHour int       // включительно
	EndHour   int       // не включительно: интервал [StartHour, EndHour)
	Resources BookingResources
	Status    BookingStatus
	Pricing   PricingBreakdown
	CreatedAt time.Time
}

// IsConfirmed returns true if the booking takes part in availability checks
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// Overlaps проверяет пересечение часовых интервалов двух бронирований.
// Интервалы полуоткрытые, поэтому стыкующиеся слоты (9-10 и 10-11) не пересекаются.
func (b *Booking) Overlaps(startHour, endHour int) bool {
	return HoursOverlap(startHour, endHour, b.StartHour, b.EndHour)
}

// HoursOverlap реализует стандартную проверку пересечения полуоткрытых интервалов:
// (StartA < EndB) && (EndA > StartB). Оба неравенства строгие.
func HoursOverlap(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}

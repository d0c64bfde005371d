package create_booking

import (
	"fmt"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Пустые и перевернутые интервалы (startHour >= endHour) отклоняются явно.
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.CourtID == "" {
		return fmt.Errorf("%w: courtID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartHour < domain.MinBookingHour || req.StartHour > domain.MaxBookingHour {
		return fmt.Errorf("%w: startHour must be between %d and %d",
			ErrInvalidInput, domain.MinBookingHour, domain.MaxBookingHour)
	}

	if req.EndHour < domain.MinBookingHour || req.EndHour > domain.MaxBookingHour {
		return fmt.Errorf("%w: endHour must be between %d and %d",
			ErrInvalidInput, domain.MinBookingHour, domain.MaxBookingHour)
	}

	if req.StartHour >= req.EndHour {
		return fmt.Errorf("%w: startHour must be before endHour", ErrInvalidInput)
	}

	if req.Rackets < 0 || req.Rackets > domain.MaxRacketsPerBooking {
		return fmt.Errorf("%w: rackets must be between 0 and %d", ErrInvalidInput, domain.MaxRacketsPerBooking)
	}

	if req.Shoes < 0 || req.Shoes > domain.MaxShoesPerBooking {
		return fmt.Errorf("%w: shoes must be between 0 and %d", ErrInvalidInput, domain.MaxShoesPerBooking)
	}

	if req.CoachID != nil && *req.CoachID == "" {
		return fmt.Errorf("%w: coachID must not be empty when provided", ErrInvalidInput)
	}

	return nil
}

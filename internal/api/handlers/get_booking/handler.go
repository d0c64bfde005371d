package get_booking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/bookings"
)

type BookingsService interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ResourcesResponse ресурсы бронирования в HTTP ответе
type ResourcesResponse struct {
	Rackets int     `json:"rackets"`
	Shoes   int     `json:"shoes"`
	CoachID *string `json:"coachId,omitempty"`
}

// PricingBreakdownResponse детализация цены в HTTP ответе
type PricingBreakdownResponse struct {
	BasePrice    float64 `json:"basePrice"`
	WeekendFee   float64 `json:"weekendFee"`
	PeakHourFee  float64 `json:"peakHourFee"`
	EquipmentFee float64 `json:"equipmentFee"`
	CoachFee     float64 `json:"coachFee"`
	Total        float64 `json:"total"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string                   `json:"id"`
	UserID    string                   `json:"userId"`
	CourtID   string                   `json:"courtId"`
	Date      string                   `json:"date"`
	StartHour int                      `json:"startHour"`
	EndHour   int                      `json:"endHour"`
	Resources ResourcesResponse        `json:"resources"`
	Status    string                   `json:"status"`
	Pricing   PricingBreakdownResponse `json:"pricingBreakdown"`
	CreatedAt string                   `json:"createdAt"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		handlers.RespondBadRequest(w, "bookingId is required")
		return
	}

	b, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, "Booking not found")
			return
		}
		h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		CourtID:   b.CourtID,
		Date:      b.Date.Format(domain.DateFormat),
		StartHour: b.StartHour,
		EndHour:   b.EndHour,
		Resources: ResourcesResponse{
			Rackets: b.Resources.Rackets,
			Shoes:   b.Resources.Shoes,
			CoachID: b.Resources.CoachID,
		},
		Status: string(b.Status),
		Pricing: PricingBreakdownResponse{
			BasePrice:    b.Pricing.BasePrice,
			WeekendFee:   b.Pricing.WeekendFee,
			PeakHourFee:  b.Pricing.PeakHourFee,
			EquipmentFee: b.Pricing.EquipmentFee,
			CoachFee:     b.Pricing.CoachFee,
			Total:        b.Pricing.Total,
		},
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	})
}

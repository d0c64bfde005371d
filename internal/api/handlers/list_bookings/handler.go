package list_bookings

import (
	"context"
	"net/http"
	"time"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

type BookingsService interface {
	List(ctx context.Context) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		response[i] = BookingResponse{
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
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

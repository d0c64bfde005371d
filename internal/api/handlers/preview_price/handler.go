package preview_price

import (
	"errors"
	"net/http"
	"time"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/pricing"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidRange       = "startHour must be before endHour, both between 0 and 23"
	msgCourtNotFound      = "Court not found"
)

// PreviewPriceRequest HTTP request model
type PreviewPriceRequest struct {
	CourtID   string           `json:"courtId"`
	Date      string           `json:"date"`
	StartHour int              `json:"startHour"`
	EndHour   int              `json:"endHour"`
	Resources ResourcesRequest `json:"resources"`
}

// ResourcesRequest запрошенные ресурсы бронирования
type ResourcesRequest struct {
	Rackets int     `json:"rackets"`
	Shoes   int     `json:"shoes"`
	CoachID *string `json:"coachId,omitempty"`
}

// PreviewPriceResponse HTTP response model
type PreviewPriceResponse struct {
	BasePrice    float64 `json:"basePrice"`
	WeekendFee   float64 `json:"weekendFee"`
	PeakHourFee  float64 `json:"peakHourFee"`
	EquipmentFee float64 `json:"equipmentFee"`
	CoachFee     float64 `json:"coachFee"`
	Total        float64 `json:"total"`
}

type Handler struct {
	service PricingService
	logger  Logger
}

func NewHandler(service PricingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/preview
// Расчет идентичен тому, что выполняется при создании бронирования,
// но ничего не записывает.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewPriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /bookings/preview - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if req.StartHour < domain.MinBookingHour || req.EndHour > domain.MaxBookingHour || req.StartHour >= req.EndHour {
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	breakdown, err := h.service.Calculate(r.Context(), &pricing.Request{
		CourtID:   req.CourtID,
		Date:      date,
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
		Resources: domain.BookingResources{
			Rackets: req.Resources.Rackets,
			Shoes:   req.Resources.Shoes,
			CoachID: req.Resources.CoachID,
		},
	})
	if err != nil {
		if errors.Is(err, pricing.ErrCourtNotFound) {
			h.logger.Warn("POST /bookings/preview - Court not found: court_id=%s", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)
			return
		}
		h.logger.Error("POST /bookings/preview - Calculation failed: court_id=%s, error=%v", req.CourtID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, PreviewPriceResponse{
		BasePrice:    breakdown.BasePrice,
		WeekendFee:   breakdown.WeekendFee,
		PeakHourFee:  breakdown.PeakHourFee,
		EquipmentFee: breakdown.EquipmentFee,
		CoachFee:     breakdown.CoachFee,
		Total:        breakdown.Total,
	})
}

package check_availability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/availability"
)

const (
	msgInvalidDate  = "invalid date, expected YYYY-MM-DD"
	msgInvalidHour  = "startHour and endHour must be integers"
	msgInvalidRange = "startHour must be before endHour, both between 0 and 23"
	msgMissingCourt = "courtId is required"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=&startHour=&endHour=&courtId=&coachId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", query.Get("date"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startHour, err := strconv.Atoi(query.Get("startHour"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidHour)
		return
	}

	endHour, err := strconv.Atoi(query.Get("endHour"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidHour)
		return
	}

	if startHour < domain.MinBookingHour || endHour > domain.MaxBookingHour || startHour >= endHour {
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	courtID := query.Get("courtId")
	if courtID == "" {
		handlers.RespondBadRequest(w, msgMissingCourt)
		return
	}

	req := &availability.Request{
		Date:      date,
		StartHour: startHour,
		EndHour:   endHour,
		CourtID:   courtID,
	}
	if coachID := query.Get("coachId"); coachID != "" {
		req.CoachID = &coachID
	}

	result, err := h.service.Check(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /availability - Check failed: court_id=%s, error=%v", courtID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		Available: result.Available,
		Reason:    result.Reason,
	})
}

package list_coaches

import (
	"context"
	"net/http"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

type CatalogService interface {
	ListCoaches(ctx context.Context) ([]*domain.Coach, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CoachResponse HTTP response model
type CoachResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	HourlyRate float64 `json:"hourlyRate"`
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.service.ListCoaches(r.Context())
	if err != nil {
		h.logger.Error("GET /coaches - Failed to list coaches: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]CoachResponse, len(coaches))
	for i, c := range coaches {
		response[i] = CoachResponse{
			ID:         c.ID,
			Name:       c.Name,
			Specialty:  c.Specialty,
			HourlyRate: c.HourlyRate,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

package list_courts

import (
	"context"
	"net/http"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

type CatalogService interface {
	ListCourts(ctx context.Context) ([]*domain.Court, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CourtResponse HTTP response model
type CourtResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	BasePrice float64 `json:"basePrice"`
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

// Handle GET /api/v1/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courts, err := h.service.ListCourts(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]CourtResponse, len(courts))
	for i, c := range courts {
		response[i] = CourtResponse{
			ID:        c.ID,
			Name:      c.Name,
			Type:      string(c.Type),
			BasePrice: c.BasePrice,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

package list_equipment

import (
	"context"
	"net/http"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

type CatalogService interface {
	ListEquipment(ctx context.Context) ([]*domain.Equipment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// EquipmentResponse HTTP response model
type EquipmentResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	TotalStock      int     `json:"totalStock"`
	PricePerSession float64 `json:"pricePerSession"`
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

// Handle GET /api/v1/equipment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListEquipment(r.Context())
	if err != nil {
		h.logger.Error("GET /equipment - Failed to list equipment: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]EquipmentResponse, len(items))
	for i, e := range items {
		response[i] = EquipmentResponse{
			ID:              e.ID,
			Name:            e.Name,
			TotalStock:      e.TotalStock,
			PricePerSession: e.PricePerSession,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

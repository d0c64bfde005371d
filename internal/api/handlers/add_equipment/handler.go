package add_equipment

import (
	"context"
	"errors"
	"net/http"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/catalog"
)

type CatalogService interface {
	AddEquipment(ctx context.Context, req *catalog.AddEquipmentRequest) (*domain.Equipment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AddEquipmentRequest HTTP request model
type AddEquipmentRequest struct {
	Name            string  `json:"name"`
	TotalStock      int     `json:"totalStock"`
	PricePerSession float64 `json:"pricePerSession"`
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

// Handle POST /api/v1/equipment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, "Invalid request body")
		return
	}

	created, err := h.service.AddEquipment(r.Context(), &catalog.AddEquipmentRequest{
		Name:            req.Name,
		TotalStock:      req.TotalStock,
		PricePerSession: req.PricePerSession,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /equipment - Failed to add equipment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, EquipmentResponse{
		ID:              created.ID,
		Name:            created.Name,
		TotalStock:      created.TotalStock,
		PricePerSession: created.PricePerSession,
	})
}

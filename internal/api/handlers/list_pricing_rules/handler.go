package list_pricing_rules

import (
	"context"
	"net/http"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

type CatalogService interface {
	ListPricingRules(ctx context.Context) ([]*domain.PricingRule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// PricingRuleResponse HTTP response model.
// Поля, не относящиеся к типу правила, опускаются.
type PricingRuleResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Multiplier float64 `json:"multiplier,omitempty"`
	Surcharge  float64 `json:"surcharge,omitempty"`
	StartTime  string  `json:"startTime,omitempty"`
	EndTime    string  `json:"endTime,omitempty"`
	Days       []int   `json:"days,omitempty"`
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

// Handle GET /api/v1/pricing-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rules, err := h.service.ListPricingRules(r.Context())
	if err != nil {
		h.logger.Error("GET /pricing-rules - Failed to list pricing rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]PricingRuleResponse, len(rules))
	for i, rule := range rules {
		response[i] = PricingRuleResponse{
			ID:         rule.ID,
			Name:       rule.Name,
			Type:       string(rule.Type),
			Multiplier: rule.Multiplier,
			Surcharge:  rule.Surcharge,
			StartTime:  rule.StartTime,
			EndTime:    rule.EndTime,
			Days:       rule.Days,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

package revenue_report

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/api/handlers"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/reports"
)

type ReportsService interface {
	Revenue(ctx context.Context) (*reports.RevenueReport, error)
	ExportRevenueXLSX(ctx context.Context) (*bytes.Buffer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DailyRevenueResponse выручка за один день в HTTP ответе
type DailyRevenueResponse struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// RevenueReportResponse HTTP response model
type RevenueReportResponse struct {
	TotalRevenue  float64                `json:"totalRevenue"`
	TotalBookings int                    `json:"totalBookings"`
	Daily         []DailyRevenueResponse `json:"daily"`
}

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/revenue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Revenue(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/revenue - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := RevenueReportResponse{
		TotalRevenue:  report.TotalRevenue,
		TotalBookings: report.TotalBookings,
		Daily:         make([]DailyRevenueResponse, len(report.Daily)),
	}
	for i, d := range report.Daily {
		response.Daily[i] = DailyRevenueResponse{Date: d.Date, Revenue: d.Revenue}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

// HandleExport GET /api/v1/reports/revenue/export
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	buf, err := h.service.ExportRevenueXLSX(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/revenue/export - Failed to export report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("revenue-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("GET /reports/revenue/export - Failed to write response: %v", err)
	}
}

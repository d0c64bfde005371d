package create_booking

import (
	"time"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	createBooking "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID   string           `json:"courtId"`
	Date      string           `json:"date"` // "2025-10-15"
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
	Resources ResourcesRequest         `json:"resources"`
	Status    string                   `json:"status"`
	Pricing   PricingBreakdownResponse `json:"pricingBreakdown"`
	CreatedAt string                   `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		CourtID:   r.CourtID,
		Date:      date,
		StartHour: r.StartHour,
		EndHour:   r.EndHour,
		Rackets:   r.Resources.Rackets,
		Shoes:     r.Resources.Shoes,
		CoachID:   r.Resources.CoachID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		CourtID:   resp.CourtID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartHour: resp.StartHour,
		EndHour:   resp.EndHour,
		Resources: ResourcesRequest{
			Rackets: resp.Rackets,
			Shoes:   resp.Shoes,
			CoachID: resp.CoachID,
		},
		Status: resp.Status,
		Pricing: PricingBreakdownResponse{
			BasePrice:    resp.Pricing.BasePrice,
			WeekendFee:   resp.Pricing.WeekendFee,
			PeakHourFee:  resp.Pricing.PeakHourFee,
			EquipmentFee: resp.Pricing.EquipmentFee,
			CoachFee:     resp.Pricing.CoachFee,
			Total:        resp.Pricing.Total,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}

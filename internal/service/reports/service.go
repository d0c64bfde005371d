package reports

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("reports: internal error")

// DailyRevenue выручка за один календарный день
type DailyRevenue struct {
	Date    string // YYYY-MM-DD
	Revenue float64
}

// RevenueReport сводка выручки по всем бронированиям
type RevenueReport struct {
	TotalRevenue  float64
	TotalBookings int
	Daily         []DailyRevenue
}

// Service строит отчеты о выручке для админской панели
type Service struct {
	bookings BookingSource
	logger   Logger
}

// NewService создает новый сервис отчетов
func NewService(bookings BookingSource, logger Logger) *Service {
	return &Service{
		bookings: bookings,
		logger:   logger,
	}
}

// Revenue возвращает суммарную выручку и разбивку по дням.
// В выручку входит полная стоимость каждого бронирования (total из детализации).
func (s *Service) Revenue(ctx context.Context) (*RevenueReport, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		s.logger.Error("RevenueReport: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	report := &RevenueReport{TotalBookings: len(bookings)}

	byDay := make(map[string]float64)
	for _, b := range bookings {
		report.TotalRevenue += b.Pricing.Total
		byDay[b.Date.Format(domain.DateFormat)] += b.Pricing.Total
	}

	report.Daily = make([]DailyRevenue, 0, len(byDay))
	for date, revenue := range byDay {
		report.Daily = append(report.Daily, DailyRevenue{Date: date, Revenue: revenue})
	}
	sort.Slice(report.Daily, func(i, j int) bool {
		return report.Daily[i].Date < report.Daily[j].Date
	})

	return report, nil
}

package preview_price

import (
	"context"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/pricing"
)

type PricingService interface {
	Calculate(ctx context.Context, req *pricing.Request) (*domain.PricingBreakdown, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

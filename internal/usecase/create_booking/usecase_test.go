package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/availability"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/service/pricing"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/pkg/ptr"
)

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	CreateFunc  func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	createCalls int
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	return booking, nil
}

// MockAvailabilityChecker is a mock implementation of AvailabilityChecker
type MockAvailabilityChecker struct {
	CheckFunc func(ctx context.Context, req *availability.Request) (*availability.Result, error)
}

func (m *MockAvailabilityChecker) Check(ctx context.Context, req *availability.Request) (*availability.Result, error) {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, req)
	}
	return &availability.Result{Available: true}, nil
}

// MockPriceCalculator is a mock implementation of PriceCalculator
type MockPriceCalculator struct {
	CalculateFunc func(ctx context.Context, req *pricing.Request) (*domain.PricingBreakdown, error)
}

func (m *MockPriceCalculator) Calculate(ctx context.Context, req *pricing.Request) (*domain.PricingBreakdown, error) {
	if m.CalculateFunc != nil {
		return m.CalculateFunc(ctx, req)
	}
	return &domain.PricingBreakdown{BasePrice: 40, Total: 40}, nil
}

// MockTransactionManager runs the callback directly, without a real transaction
type MockTransactionManager struct {
	DoSerializableFunc func(ctx context.Context, fn func(ctx context.Context) error) error
	calls              int
}

func (m *MockTransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.DoSerializableFunc != nil {
		return m.DoSerializableFunc(ctx, fn)
	}
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		UserID:    "u1",
		CourtID:   "c1",
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartHour: 10,
		EndHour:   12,
		Rackets:   2,
		Shoes:     1,
	}
}

func newTestUseCase(
	repo *MockBookingRepository,
	checker *MockAvailabilityChecker,
	calculator *MockPriceCalculator,
	txManager *MockTransactionManager,
) *UseCase {
	uc := NewUseCase(repo, checker, calculator, txManager, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: fixedNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	breakdown := domain.PricingBreakdown{
		BasePrice: 40, WeekendFee: 10, EquipmentFee: 13, Total: 63,
	}
	calculator := &MockPriceCalculator{
		CalculateFunc: func(ctx context.Context, req *pricing.Request) (*domain.PricingBreakdown, error) {
			return &breakdown, nil
		},
	}
	uc := newTestUseCase(repo, &MockAvailabilityChecker{}, calculator, &MockTransactionManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, "c1", resp.CourtID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, breakdown, resp.Pricing)
	assert.Equal(t, fixedNow, resp.CreatedAt)
	assert.Equal(t, 1, repo.createCalls)
}

func TestExecute_GeneratesUniqueIDs(t *testing.T) {
	repo := &MockBookingRepository{}
	uc := newTestUseCase(repo, &MockAvailabilityChecker{}, &MockPriceCalculator{}, &MockTransactionManager{})

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	repo := &MockBookingRepository{}
	checker := &MockAvailabilityChecker{
		CheckFunc: func(ctx context.Context, req *availability.Request) (*availability.Result, error) {
			return &availability.Result{Available: false, Reason: availability.ReasonCourtConflict}, nil
		},
	}
	uc := newTestUseCase(repo, checker, &MockPriceCalculator{}, &MockTransactionManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Текст причины доступен дословно для отдачи клиенту
	var slotErr *SlotUnavailableError
	require.ErrorAs(t, err, &slotErr)
	assert.Equal(t, availability.ReasonCourtConflict, slotErr.Reason)

	// Неуспешное создание не пишет в хранилище
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_CourtNotFound(t *testing.T) {
	repo := &MockBookingRepository{}
	calculator := &MockPriceCalculator{
		CalculateFunc: func(ctx context.Context, req *pricing.Request) (*domain.PricingBreakdown, error) {
			return nil, pricing.ErrCourtNotFound
		},
	}
	uc := newTestUseCase(repo, &MockAvailabilityChecker{}, calculator, &MockTransactionManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrCourtNotFound)
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &MockBookingRepository{
		CreateFunc: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := newTestUseCase(repo, &MockAvailabilityChecker{}, &MockPriceCalculator{}, &MockTransactionManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_RunsInsideTransaction(t *testing.T) {
	txManager := &MockTransactionManager{}
	uc := newTestUseCase(&MockBookingRepository{}, &MockAvailabilityChecker{}, &MockPriceCalculator{}, txManager)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, txManager.calls)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"missing user", func(req *Request) { req.UserID = "" }},
		{"missing court", func(req *Request) { req.CourtID = "" }},
		{"missing date", func(req *Request) { req.Date = time.Time{} }},
		{"start equals end", func(req *Request) { req.StartHour = 10; req.EndHour = 10 }},
		{"start after end", func(req *Request) { req.StartHour = 12; req.EndHour = 10 }},
		{"start hour out of range", func(req *Request) { req.StartHour = -1 }},
		{"end hour out of range", func(req *Request) { req.EndHour = 24 }},
		{"negative rackets", func(req *Request) { req.Rackets = -1 }},
		{"too many rackets", func(req *Request) { req.Rackets = domain.MaxRacketsPerBooking + 1 }},
		{"negative shoes", func(req *Request) { req.Shoes = -1 }},
		{"empty coach id", func(req *Request) { req.CoachID = ptr.Ptr("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockBookingRepository{}
			txManager := &MockTransactionManager{}
			uc := newTestUseCase(repo, &MockAvailabilityChecker{}, &MockPriceCalculator{}, txManager)

			req := validRequest()
			tt.mutate(req)

			resp, err := uc.Execute(context.Background(), req)

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)

			// Невалидный запрос не доходит до транзакции и хранилища
			assert.Equal(t, 0, txManager.calls)
			assert.Equal(t, 0, repo.createCalls)
		})
	}
}

package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	bookingRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/booking"
)

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	ListFunc    func(ctx context.Context) ([]*domain.Booking, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.Booking, error)
}

func (m *MockBookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*domain.Booking{}, nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, bookingRepo.ErrBookingNotFound
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestList(t *testing.T) {
	repo := &MockBookingRepository{
		ListFunc: func(ctx context.Context) ([]*domain.Booking, error) {
			return []*domain.Booking{{ID: "b1"}, {ID: "b2"}}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	list, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestList_RepositoryError(t *testing.T) {
	repo := &MockBookingRepository{
		ListFunc: func(ctx context.Context) ([]*domain.Booking, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewService(repo, nopLogger{})

	list, err := svc.List(context.Background())

	require.Error(t, err)
	assert.Nil(t, list)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID(t *testing.T) {
	repo := &MockBookingRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Booking, error) {
			return &domain.Booking{ID: id}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	b, err := svc.GetByID(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&MockBookingRepository{}, nopLogger{})

	b, err := svc.GetByID(context.Background(), "ghost")

	require.Error(t, err)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

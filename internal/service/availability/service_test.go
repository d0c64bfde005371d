package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/pkg/ptr"
)

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	GetConfirmedByDateFunc func(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

func (m *MockBookingRepository) GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	if m.GetConfirmedByDateFunc != nil {
		return m.GetConfirmedByDateFunc(ctx, date)
	}
	return []*domain.Booking{}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func confirmedBooking(courtID string, startHour, endHour int, coachID *string) *domain.Booking {
	return &domain.Booking{
		ID:        "b-" + courtID,
		UserID:    "u1",
		CourtID:   courtID,
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartHour: startHour,
		EndHour:   endHour,
		Resources: domain.BookingResources{CoachID: coachID},
		Status:    domain.StatusConfirmed,
	}
}

func TestCheck_EmptyDay(t *testing.T) {
	svc := NewService(&MockBookingRepository{}, nopLogger{})

	result, err := svc.Check(context.Background(), &Request{
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartHour: 10,
		EndHour:   11,
		CourtID:   "c1",
	})

	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Empty(t, result.Reason)
}

func TestCheck_CourtConflict(t *testing.T) {
	repo := &MockBookingRepository{
		GetConfirmedByDateFunc: func(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
			return []*domain.Booking{confirmedBooking("c1", 14, 16, nil)}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	tests := []struct {
		name      string
		startHour int
		endHour   int
		available bool
	}{
		{"overlap from the right", 15, 17, false},
		{"overlap from the left", 13, 15, false},
		{"exact same slot", 14, 16, false},
		{"contained inside", 14, 15, false},
		{"containing the slot", 13, 17, false},
		{"back-to-back before", 12, 14, true},
		{"back-to-back after", 16, 18, true},
		{"far away", 9, 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Check(context.Background(), &Request{
				Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
				StartHour: tt.startHour,
				EndHour:   tt.endHour,
				CourtID:   "c1",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.available, result.Available)
			if !tt.available {
				assert.Equal(t, ReasonCourtConflict, result.Reason)
			}
		})
	}
}

func TestCheck_OtherCourtSameHours(t *testing.T) {
	repo := &MockBookingRepository{
		GetConfirmedByDateFunc: func(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
			return []*domain.Booking{confirmedBooking("c1", 10, 12, nil)}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Check(context.Background(), &Request{
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartHour: 10,
		EndHour:   12,
		CourtID:   "c2",
	})

	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheck_CoachConflictAcrossCourts(t *testing.T) {
	// Тренер занят на другом корте: слот недоступен, хотя корт свободен
	repo := &MockBookingRepository{
		GetConfirmedByDateFunc: func(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
			return []*domain.Booking{confirmedBooking("c1", 10, 12, ptr.Ptr("ch1"))}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Check(context.Background(), &Request{
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartHour: 11,
		EndHour:   13,
		CourtID:   "c2",
		CoachID:   ptr.Ptr("ch1"),
	})

	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonCoachConflict, result.Reason)
}

func TestCheck_CourtReasonWinsOverCoach(t *testing.T) {
	// Конфликт и по корту, и по тренеру: причина по корту имеет приоритет
	repo := &MockBookingRepository{
		GetConfirmedByDateFunc: func(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
			return []*domain.Booking{confirmedBooking("c1", 10, 12, ptr.Ptr("ch1"))}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Check(context.Background(), &Request{
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartHour: 11,
		EndHour:   13,
		CourtID:   "c1",
		CoachID:   ptr.Ptr("ch1"),
	})

	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonCourtConflict, result.Reason)
}

func TestCheck_NoCoachRequestedIgnoresCoachBookings(t *testing.T) {
	repo := &MockBookingRepository{
		GetConfirmedByDateFunc: func(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
			return []*domain.Booking{confirmedBooking("c1", 10, 12, ptr.Ptr("ch1"))}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Check(context.Background(), &Request{
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartHour: 10,
		EndHour:   12,
		CourtID:   "c2",
	})

	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheck_DifferentCoachSameHours(t *testing.T) {
	repo := &MockBookingRepository{
		GetConfirmedByDateFunc: func(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
			return []*domain.Booking{confirmedBooking("c1", 10, 12, ptr.Ptr("ch1"))}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Check(context.Background(), &Request{
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartHour: 10,
		EndHour:   12,
		CourtID:   "c2",
		CoachID:   ptr.Ptr("ch2"),
	})

	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheck_CancelledBookingsIgnored(t *testing.T) {
	cancelled := confirmedBooking("c1", 10, 12, nil)
	cancelled.Status = domain.StatusCancelled

	repo := &MockBookingRepository{
		GetConfirmedByDateFunc: func(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
			return []*domain.Booking{cancelled}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Check(context.Background(), &Request{
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartHour: 10,
		EndHour:   12,
		CourtID:   "c1",
	})

	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheck_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &MockBookingRepository{
		GetConfirmedByDateFunc: func(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
			return nil, repoErr
		},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.Check(context.Background(), &Request{
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		StartHour: 10,
		EndHour:   12,
		CourtID:   "c1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, repoErr)
}

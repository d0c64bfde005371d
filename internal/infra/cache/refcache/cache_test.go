package refcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	coachRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/coach"
	courtRepo "github.com/veerababu-g/SPORT-COURT-BOOKING/internal/infra/storage/court"
)

type mockCourtSource struct {
	courts []*domain.Court
	calls  int
}

func (m *mockCourtSource) List(ctx context.Context) ([]*domain.Court, error) {
	m.calls++
	return m.courts, nil
}

type mockEquipmentSource struct {
	items []*domain.Equipment
	calls int
}

func (m *mockEquipmentSource) List(ctx context.Context) ([]*domain.Equipment, error) {
	m.calls++
	return m.items, nil
}

type mockCoachSource struct {
	coaches []*domain.Coach
}

func (m *mockCoachSource) List(ctx context.Context) ([]*domain.Coach, error) {
	return m.coaches, nil
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, time.Minute), mr
}

func TestCourts_ListCachesCollection(t *testing.T) {
	cache, _ := newTestCache(t)
	source := &mockCourtSource{courts: []*domain.Court{
		{ID: "c1", Name: "Badminton Court A", Type: domain.CourtIndoor, BasePrice: 20},
	}}
	courts := NewCourts(cache, source)

	first, err := courts.List(context.Background())
	require.NoError(t, err)
	second, err := courts.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Второй вызов обслуживается из кэша
	assert.Equal(t, 1, source.calls)
}

func TestCourts_GetByID(t *testing.T) {
	cache, _ := newTestCache(t)
	source := &mockCourtSource{courts: []*domain.Court{
		{ID: "c1", Name: "Badminton Court A", Type: domain.CourtIndoor, BasePrice: 20},
		{ID: "c3", Name: "Tennis Court 1", Type: domain.CourtOutdoor, BasePrice: 15},
	}}
	courts := NewCourts(cache, source)

	t.Run("found", func(t *testing.T) {
		court, err := courts.GetByID(context.Background(), "c3")
		require.NoError(t, err)
		assert.Equal(t, "Tennis Court 1", court.Name)
	})

	t.Run("not found", func(t *testing.T) {
		court, err := courts.GetByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Nil(t, court)
		assert.ErrorIs(t, err, courtRepo.ErrCourtNotFound)
	})
}

func TestCoaches_GetByIDNotFound(t *testing.T) {
	cache, _ := newTestCache(t)
	coaches := NewCoaches(cache, &mockCoachSource{coaches: []*domain.Coach{
		{ID: "ch1", Name: "John Doe", Specialty: "Badminton", HourlyRate: 25},
	}})

	coach, err := coaches.GetByID(context.Background(), "ghost")

	require.Error(t, err)
	assert.Nil(t, coach)
	assert.ErrorIs(t, err, coachRepo.ErrCoachNotFound)
}

func TestEquipment_InvalidateForcesReload(t *testing.T) {
	cache, _ := newTestCache(t)
	source := &mockEquipmentSource{items: []*domain.Equipment{
		{ID: "eq1", Name: domain.EquipmentRacket, TotalStock: 20, PricePerSession: 5},
	}}
	equipment := NewEquipment(cache, source)

	_, err := equipment.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, source.calls)

	// После добавления позиции каталог расширился
	source.items = append(source.items, &domain.Equipment{
		ID: "eq2", Name: domain.EquipmentShoes, TotalStock: 10, PricePerSession: 3,
	})
	require.NoError(t, equipment.Invalidate(context.Background()))

	items, err := equipment.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, source.calls)
}

func TestCache_ExpiredKeyReloads(t *testing.T) {
	cache, mr := newTestCache(t)
	source := &mockCourtSource{courts: []*domain.Court{
		{ID: "c1", Name: "Badminton Court A", Type: domain.CourtIndoor, BasePrice: 20},
	}}
	courts := NewCourts(cache, source)

	_, err := courts.List(context.Background())
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = courts.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestCache_RedisDownFallsBackToSource(t *testing.T) {
	cache, mr := newTestCache(t)
	source := &mockCourtSource{courts: []*domain.Court{
		{ID: "c1", Name: "Badminton Court A", Type: domain.CourtIndoor, BasePrice: 20},
	}}
	courts := NewCourts(cache, source)

	mr.Close()

	items, err := courts.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, source.calls)
}

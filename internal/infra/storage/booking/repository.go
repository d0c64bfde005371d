package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/veerababu-g/SPORT-COURT-BOOKING/internal/domain"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/pkg/dbmetrics"
	"github.com/veerababu-g/SPORT-COURT-BOOKING/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"court_id",
	"booking_date",
	"start_hour",
	"end_hour",
	"rackets",
	"shoes",
	"coach_id",
	"status",
	"base_price",
	"weekend_fee",
	"peak_hour_fee",
	"equipment_fee",
	"coach_fee",
	"total",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование.
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Записи бронирований append-only: обновления и удаления репозиторий не поддерживает.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_id",
			"court_id",
			"booking_date",
			"start_hour",
			"end_hour",
			"rackets",
			"shoes",
			"coach_id",
			"status",
			"base_price",
			"weekend_fee",
			"peak_hour_fee",
			"equipment_fee",
			"coach_fee",
			"total",
		).
		Values(
			b.ID,
			b.UserID,
			b.CourtID,
			b.Date,
			b.StartHour,
			b.EndHour,
			b.Resources.Rackets,
			b.Resources.Shoes,
			b.Resources.CoachID,
			b.Status,
			b.Pricing.BasePrice,
			b.Pricing.WeekendFee,
			b.Pricing.PeakHourFee,
			b.Pricing.EquipmentFee,
			b.Pricing.CoachFee,
			b.Pricing.Total,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetConfirmedByDate получает все подтвержденные бронирования на дату.
// Внутри транзакции выбранные строки блокируются (FOR UPDATE), чтобы проверка
// доступности и последующая вставка были единой атомарной операцией.
func (r *Repository) GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"booking_date": date,
			"status":       domain.StatusConfirmed,
		}).
		OrderBy("start_hour ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// List получает все бронирования, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("booking_date DESC, start_hour DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var coachID sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.CourtID,
		&b.Date,
		&b.StartHour,
		&b.EndHour,
		&b.Resources.Rackets,
		&b.Resources.Shoes,
		&coachID,
		&b.Status,
		&b.Pricing.BasePrice,
		&b.Pricing.WeekendFee,
		&b.Pricing.PeakHourFee,
		&b.Pricing.EquipmentFee,
		&b.Pricing.CoachFee,
		&b.Pricing.Total,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if coachID.Valid {
		b.Resources.CoachID = &coachID.String
	}
	b.CreatedAt = createdAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/psqlbuilder"
)

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"service_provider_id",
			"client_id",
			"service_date",
			"service_type",
			"status",
			"reviewed",
		).
		Values(
			booking.ID,
			booking.ServiceProviderID,
			booking.ClientID,
			booking.ServiceDate,
			booking.ServiceType,
			booking.Status,
			booking.Reviewed,
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

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри активной транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ServiceProviderID,
		&booking.ClientID,
		&booking.ServiceDate,
		&booking.ServiceType,
		&booking.Status,
		&booking.Reviewed,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// ListByProviderID получает бронирования поставщика в порядке идентификаторов
// Опционально фильтрует по статусу
func (r *Repository) ListByProviderID(ctx context.Context, providerID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return r.listByField(ctx, "service_provider_id", providerID, status, "ListByProviderID")
}

// ListByClientID получает бронирования клиента в порядке идентификаторов
// Опционально фильтрует по статусу
func (r *Repository) ListByClientID(ctx context.Context, clientID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return r.listByField(ctx, "client_id", clientID, status, "ListByClientID")
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return r.update(ctx, id, map[string]interface{}{"status": status}, "UpdateStatus")
}

// UpdateServiceDate переносит бронирование на новую дату
func (r *Repository) UpdateServiceDate(ctx context.Context, id string, serviceDate int64) error {
	return r.update(ctx, id, map[string]interface{}{"service_date": serviceDate}, "UpdateServiceDate")
}

// MarkReviewed помечает бронирование как получившее отзыв
func (r *Repository) MarkReviewed(ctx context.Context, id string) error {
	return r.update(ctx, id, map[string]interface{}{"reviewed": true}, "MarkReviewed")
}

var bookingColumns = []string{
	"id",
	"service_provider_id",
	"client_id",
	"service_date",
	"service_type",
	"status",
	"reviewed",
	"created_at",
}

func (r *Repository) listByField(ctx context.Context, field, value string, status *domain.BookingStatus, op string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{field: value}).
		OrderBy("id ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

func (r *Repository) update(ctx context.Context, id string, fields map[string]interface{}, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Where(squirrel.Eq{"id": id})
	for column, value := range fields {
		updateBuilder = updateBuilder.Set(column, value)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ServiceProviderID,
			&booking.ClientID,
			&booking.ServiceDate,
			&booking.ServiceType,
			&booking.Status,
			&booking.Reviewed,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

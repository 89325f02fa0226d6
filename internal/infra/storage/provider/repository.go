package provider

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/psqlbuilder"
)

// Repository репозиторий поставщиков услуг
// Отзывы хранятся встроенным JSONB-массивом: у отзыва нет собственной
// идентичности, он живет и умирает вместе со своим поставщиком
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория поставщиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового поставщика услуг
func (r *Repository) Create(ctx context.Context, provider *domain.ServiceProvider) (*domain.ServiceProvider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	reviews, err := encodeReviews(provider.Reviews)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("service_providers").
		Columns(
			"id",
			"name",
			"service_type",
			"contact_info",
			"average_rating",
			"reviews",
			"availability",
		).
		Values(
			provider.ID,
			provider.Name,
			provider.ServiceType,
			provider.ContactInfo,
			provider.AverageRating,
			reviews,
			pq.Array(provider.Availability),
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

	provider.CreatedAt = createdAt.Time

	return provider, nil
}

// GetByID получает поставщика по ID
// Внутри активной транзакции строка блокируется (FOR UPDATE):
// читающая сторона намерена изменить запись и записать её обратно
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.ServiceProvider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"service_type",
		"contact_info",
		"average_rating",
		"reviews",
		"availability",
		"created_at",
	).
		From("service_providers").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		provider     domain.ServiceProvider
		reviewsRaw   []byte
		availability pq.Int64Array
		createdAt    sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&provider.ID,
		&provider.Name,
		&provider.ServiceType,
		&provider.ContactInfo,
		&provider.AverageRating,
		&reviewsRaw,
		&availability,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan provider: %v", ErrScanRow, err)
	}

	provider.Reviews, err = decodeReviews(reviewsRaw)
	if err != nil {
		return nil, err
	}
	provider.Availability = availability
	provider.CreatedAt = createdAt.Time

	return &provider, nil
}

// Update записывает поставщика целиком под тем же ключом
// Вызывающая сторона работает с собственной копией записи: Update фиксирует
// результат цикла "прочитал - изменил - записал"
func (r *Repository) Update(ctx context.Context, provider *domain.ServiceProvider) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	reviews, err := encodeReviews(provider.Reviews)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("service_providers").
		Set("name", provider.Name).
		Set("service_type", provider.ServiceType).
		Set("contact_info", provider.ContactInfo).
		Set("average_rating", provider.AverageRating).
		Set("reviews", reviews).
		Set("availability", pq.Array(provider.Availability)).
		Where(squirrel.Eq{"id": provider.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProviderNotFound
	}

	return nil
}

// List возвращает всех поставщиков в порядке идентификаторов
func (r *Repository) List(ctx context.Context) ([]*domain.ServiceProvider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"service_type",
		"contact_info",
		"average_rating",
		"reviews",
		"availability",
		"created_at",
	).
		From("service_providers").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	providers := make([]*domain.ServiceProvider, 0)

	for rows.Next() {
		var (
			provider     domain.ServiceProvider
			reviewsRaw   []byte
			availability pq.Int64Array
			createdAt    sql.NullTime
		)

		err := rows.Scan(
			&provider.ID,
			&provider.Name,
			&provider.ServiceType,
			&provider.ContactInfo,
			&provider.AverageRating,
			&reviewsRaw,
			&availability,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		provider.Reviews, err = decodeReviews(reviewsRaw)
		if err != nil {
			return nil, err
		}
		provider.Availability = availability
		provider.CreatedAt = createdAt.Time

		providers = append(providers, &provider)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return providers, nil
}

// encodeReviews сериализует список отзывов в JSONB
func encodeReviews(reviews []domain.Review) ([]byte, error) {
	if reviews == nil {
		reviews = []domain.Review{}
	}

	data, err := json.Marshal(reviews)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeReviews, err)
	}
	return data, nil
}

// decodeReviews десериализует список отзывов из JSONB
func decodeReviews(raw []byte) ([]domain.Review, error) {
	if len(raw) == 0 {
		return []domain.Review{}, nil
	}

	var reviews []domain.Review
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeReviews, err)
	}
	return reviews, nil
}

package add_review

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	MarkReviewed(ctx context.Context, id string) error
}

// ProviderRepository интерфейс репозитория поставщиков
type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ServiceProvider, error)
	Update(ctx context.Context, provider *domain.ServiceProvider) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

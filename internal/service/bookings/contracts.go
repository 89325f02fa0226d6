package bookings

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByProviderID(ctx context.Context, providerID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	ListByClientID(ctx context.Context, clientID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	UpdateServiceDate(ctx context.Context, id string, serviceDate int64) error
}

// ProviderRepository интерфейс репозитория поставщиков
type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ServiceProvider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

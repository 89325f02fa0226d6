package providers

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// ProviderRepository интерфейс репозитория поставщиков
type ProviderRepository interface {
	Create(ctx context.Context, provider *domain.ServiceProvider) (*domain.ServiceProvider, error)
	List(ctx context.Context) ([]*domain.ServiceProvider, error)
}

// IDGenerator интерфейс генерации уникальных идентификаторов
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_all_providers

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers/models"
)

type ProviderService interface {
	GetAll(ctx context.Context) (*models.ProviderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_all_providers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers"
)

const (
	msgNoProvidersFound = "поставщики услуг не найдены"
)

type Handler struct {
	service ProviderService
	logger  Logger
}

func NewHandler(service ProviderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrNoProvidersFound):
			h.logger.Warn("GET /providers - No providers registered")
			handlers.RespondNotFound(w, msgNoProvidersFound)

		default:
			h.logger.Error("GET /providers - Failed to fetch providers: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers - Providers fetched successfully: count=%d", len(result.Providers))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package create_provider

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные поставщика"
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

// Handle POST /api/v1/providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProviderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, providers.ErrInvalidInput):
			h.logger.Warn("POST /providers - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /providers - Failed to create provider: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers - Provider created successfully: provider_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

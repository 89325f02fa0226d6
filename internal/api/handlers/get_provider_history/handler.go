package get_provider_history

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings/models"
	"github.com/m04kA/SMC-MarketplaceService/pkg/ptr"
)

const (
	msgInvalidProviderID = "некорректный ID поставщика"
	msgInvalidStatus     = "некорректный статус бронирования"
	msgNoBookingsFound   = "бронирования поставщика не найдены"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/bookings?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providerID := mux.Vars(r)["providerId"]
	if providerID == "" {
		h.logger.Warn("GET /providers/{id}/bookings - Empty provider ID")
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	req := &models.GetHistoryRequest{ID: providerID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.service.GetProviderHistory(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/bookings - Invalid status filter: provider_id=%s, error=%v",
				providerID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrNoBookingsFound):
			h.logger.Warn("GET /providers/{id}/bookings - No bookings found: provider_id=%s", providerID)
			handlers.RespondNotFound(w, msgNoBookingsFound)

		default:
			h.logger.Error("GET /providers/{id}/bookings - Failed to fetch history: provider_id=%s, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/bookings - History fetched successfully: provider_id=%s, count=%d",
		providerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_client_history

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
	msgInvalidClientID = "некорректный ID клиента"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgNoBookingsFound = "бронирования клиента не найдены"
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

// Handle GET /api/v1/clients/{clientId}/bookings?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]
	if clientID == "" {
		h.logger.Warn("GET /clients/{id}/bookings - Empty client ID")
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	req := &models.GetHistoryRequest{ID: clientID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.service.GetClientHistory(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/bookings - Invalid status filter: client_id=%s, error=%v",
				clientID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrNoBookingsFound):
			h.logger.Warn("GET /clients/{id}/bookings - No bookings found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgNoBookingsFound)

		default:
			h.logger.Error("GET /clients/{id}/bookings - Failed to fetch history: client_id=%s, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id}/bookings - History fetched successfully: client_id=%s, count=%d",
		clientID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректная дата переноса"
	msgNotFound           = "бронирование не найдено"
	msgProviderNotFound   = "поставщик услуг не найден"
	msgNotPending         = "перенести можно только ожидающее бронирование"
	msgDateUnavailable    = "поставщик недоступен на новую дату"
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

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Empty booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Reschedule(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Validation failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrProviderNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Provider not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, bookings.ErrNotPending):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Not pending: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgNotPending)

		case errors.Is(err, bookings.ErrDateUnavailable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Date unavailable: booking_id=%s, date=%d",
				bookingID, req.NewDate)
			handlers.RespondConflict(w, msgDateUnavailable)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed to reschedule: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled successfully: booking_id=%s, new_date=%d",
		bookingID, req.NewDate)
	handlers.RespondJSON(w, http.StatusOK, result)
}

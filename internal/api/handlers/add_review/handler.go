package add_review

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MarketplaceService/internal/api/handlers"
	addReview "github.com/m04kA/SMC-MarketplaceService/internal/usecase/add_review"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidInput       = "некорректные данные отзыва"
	msgBookingNotFound    = "бронирование не найдено"
	msgProviderNotFound   = "поставщик услуг не найден"
	msgNotCompleted       = "отзыв можно оставить только по завершённому бронированию"
	msgAlreadyReviewed    = "отзыв по этому бронированию уже оставлен"
)

type Handler struct {
	useCase AddReviewUseCase
	logger  Logger
}

func NewHandler(useCase AddReviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("POST /bookings/{id}/reviews - Empty booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AddReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, addReview.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/reviews - Validation failed: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, addReview.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/reviews - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, addReview.ErrProviderNotFound):
			h.logger.Warn("POST /bookings/{id}/reviews - Provider not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, addReview.ErrNotCompleted):
			h.logger.Warn("POST /bookings/{id}/reviews - Booking not completed: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgNotCompleted)

		case errors.Is(err, addReview.ErrAlreadyReviewed):
			h.logger.Warn("POST /bookings/{id}/reviews - Already reviewed: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgAlreadyReviewed)

		default:
			h.logger.Error("POST /bookings/{id}/reviews - Failed to add review: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reviews - Review added successfully: booking_id=%s, provider_id=%s, rating=%d",
		bookingID, result.ID, req.Rating)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

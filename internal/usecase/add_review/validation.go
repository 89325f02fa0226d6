package add_review

import (
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Валидация выполняется до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}

	if req.Comment == "" {
		return fmt.Errorf("%w: comment is required", ErrInvalidInput)
	}
	if len(req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	return nil
}

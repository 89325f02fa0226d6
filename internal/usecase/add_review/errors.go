package add_review

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("add_review: booking not found")

	// ErrProviderNotFound возвращается, когда поставщик бронирования не найден
	ErrProviderNotFound = errors.New("add_review: service provider not found")

	// ErrNotCompleted возвращается, когда отзыв оставляют по незавершённому бронированию
	ErrNotCompleted = errors.New("add_review: booking is not completed")

	// ErrAlreadyReviewed возвращается при повторном отзыве по тому же бронированию
	ErrAlreadyReviewed = errors.New("add_review: booking has already been reviewed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_review: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_review: internal error")
)

package create_booking

import "errors"

var (
	// ErrProviderNotFound возвращается, когда поставщик услуг не найден
	ErrProviderNotFound = errors.New("create_booking: service provider not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrDateUnavailable возвращается, когда дата отсутствует в списке доступности поставщика
	ErrDateUnavailable = errors.New("create_booking: provider is not available on the selected date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

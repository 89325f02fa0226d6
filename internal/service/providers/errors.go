package providers

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("providers: invalid input data")

	// ErrNoProvidersFound возвращается, когда в каталоге нет ни одного поставщика
	ErrNoProvidersFound = errors.New("providers: no service providers found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("providers: internal error")
)

package provider

import "errors"

var (
	// ErrProviderNotFound возвращается, когда поставщик услуг не найден
	ErrProviderNotFound = errors.New("provider.repository: service provider not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("provider.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("provider.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("provider.repository: failed to scan row")

	// ErrEncodeReviews возвращается при ошибке сериализации списка отзывов
	ErrEncodeReviews = errors.New("provider.repository: failed to encode reviews")

	// ErrDecodeReviews возвращается при ошибке десериализации списка отзывов
	ErrDecodeReviews = errors.New("provider.repository: failed to decode reviews")
)

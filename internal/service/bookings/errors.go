package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrProviderNotFound возвращается, когда поставщик бронирования не найден
	ErrProviderNotFound = errors.New("bookings: service provider not found")

	// ErrNotPending возвращается, когда операция допустима только для ожидающего бронирования
	ErrNotPending = errors.New("bookings: booking is not pending")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("bookings: booking cannot be cancelled")

	// ErrNotConfirmed возвращается, когда завершить можно только подтверждённое бронирование
	ErrNotConfirmed = errors.New("bookings: booking is not confirmed")

	// ErrDateUnavailable возвращается, когда дата отсутствует в списке доступности поставщика
	ErrDateUnavailable = errors.New("bookings: provider is not available on this date")

	// ErrNoBookingsFound возвращается, когда история бронирований пуста
	ErrNoBookingsFound = errors.New("bookings: no bookings found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)

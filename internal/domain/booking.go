package domain

import "time"

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
	StatusCompleted BookingStatus = "completed"
)

// Booking бронирование услуги
// Ссылается на поставщика и клиента по идентификаторам, без вложенности
type Booking struct {
	ID                string
	ServiceProviderID string
	ClientID          string
	ServiceDate       int64 // unix-метка слота из списка доступности поставщика
	ServiceType       string
	Status            BookingStatus
	Reviewed          bool // уже оставлен отзыв по этому бронированию
	CreatedAt         time.Time
}

// CanBeConfirmed возвращает true, если бронирование можно подтвердить
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeRescheduled возвращает true, если бронирование можно перенести
// Перенос допустим только до подтверждения
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCompleted возвращает true, если бронирование можно завершить
// Завершить можно только подтверждённое бронирование
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// CanBeReviewed возвращает true, если по бронированию можно оставить отзыв
// Отзыв допустим только по завершённому бронированию и только один раз
func (b *Booking) CanBeReviewed() bool {
	return b.Status == StatusCompleted && !b.Reviewed
}

// IsActive возвращает true, если бронирование ещё не достигло конечного состояния
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

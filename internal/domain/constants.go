package domain

// Границы оценки в отзыве
const (
	MinRating = 1
	MaxRating = 5
)

// Ограничения на длину входных полей
const (
	MaxNameLength        = 255
	MaxContactInfoLength = 255
	MaxServiceTypeLength = 100
	MaxCommentLength     = 500
)

// ActiveStatuses список статусов активных бронирований
// Используется для фильтрации истории
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// ValidStatuses полный список допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCanceled,
	StatusCompleted,
}

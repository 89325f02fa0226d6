package add_review

import "time"

// Request модель запроса на добавление отзыва
type Request struct {
	BookingID string // ID завершённого бронирования
	Rating    int64  // оценка 1-5
	Comment   string // текст отзыва
}

// ReviewItem отзыв в составе ответа
type ReviewItem struct {
	ClientID  string // ID клиента, оставившего отзыв
	Rating    int64  // оценка
	Comment   string // текст отзыва
	CreatedAt int64  // unix-время создания отзыва
}

// Response модель ответа с обновлённым поставщиком
type Response struct {
	ID            string       // ID поставщика
	Name          string       // название
	ServiceType   string       // тип услуги
	ContactInfo   string       // контактная информация
	AverageRating int64        // пересчитанный средний рейтинг
	Reviews       []ReviewItem // полный список отзывов, включая добавленный
	Availability  []int64      // список доступных слотов
	CreatedAt     time.Time    // время регистрации поставщика
}

package domain

import "time"

// Review отзыв клиента о выполненном бронировании
// Отзыв встроен в поставщика услуг и не существует как отдельная сущность:
// у него нет собственного идентификатора и отдельного хранилища
type Review struct {
	ClientID  string `json:"client_id"`
	Rating    int64  `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"created_at"` // unix-время
}

// ServiceProvider поставщик услуг на маркетплейсе
type ServiceProvider struct {
	ID            string
	Name          string
	ServiceType   string
	ContactInfo   string
	AverageRating int64 // целочисленное среднее по всем отзывам, 0 при отсутствии отзывов
	Reviews       []Review
	Availability  []int64 // unix-метки доступных слотов
	CreatedAt     time.Time
}

// IsAvailableOn возвращает true, если дата присутствует в списке доступности
// Проверка — точное совпадение значений, без интервалов и сортировки;
// пустой список означает, что поставщик никогда не доступен
func (p *ServiceProvider) IsAvailableOn(date int64) bool {
	for _, slot := range p.Availability {
		if slot == date {
			return true
		}
	}
	return false
}

// AddReview добавляет отзыв и пересчитывает средний рейтинг
func (p *ServiceProvider) AddReview(review Review) {
	p.Reviews = append(p.Reviews, review)
	p.AverageRating = averageRating(p.Reviews)
}

// averageRating целочисленное среднее по полному списку отзывов
// Сумма каждый раз пересчитывается заново: инкрементальное обновление
// уже округлённого среднего накапливало бы ошибку округления
func averageRating(reviews []Review) int64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum int64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / int64(len(reviews))
}

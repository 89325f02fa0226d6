package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ServiceProviderID string // ID поставщика услуг
	ClientID          string // ID клиента
	ServiceDate       int64  // unix-метка слота из списка доступности поставщика
	ServiceType       string // тип услуги
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                string    // ID созданного бронирования
	ServiceProviderID string    // ID поставщика услуг
	ClientID          string    // ID клиента
	ServiceDate       int64     // дата оказания услуги
	ServiceType       string    // тип услуги
	Status            string    // статус бронирования (всегда pending при создании)
	Reviewed          bool      // флаг наличия отзыва (всегда false при создании)
	CreatedAt         time.Time // время создания
}

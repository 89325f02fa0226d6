package domain

// Client клиент маркетплейса
// Создается при регистрации и после этого не изменяется
type Client struct {
	ID          string
	Name        string
	ContactInfo string
}

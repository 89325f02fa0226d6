package models

import "github.com/m04kA/SMC-MarketplaceService/internal/domain"

// CreateClientRequest запрос на регистрацию клиента
type CreateClientRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
}

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
}

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	return &ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		ContactInfo: c.ContactInfo,
	}
}

package models

import (
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// Request модели

// CreateProviderRequest запрос на регистрацию поставщика услуг
type CreateProviderRequest struct {
	Name         string  `json:"name"`
	ServiceType  string  `json:"serviceType"`
	ContactInfo  string  `json:"contactInfo"`
	Availability []int64 `json:"availability"` // unix-метки доступных слотов
}

// Response модели

// ReviewResponse отзыв в составе поставщика
type ReviewResponse struct {
	ClientID  string `json:"clientId"`
	Rating    int64  `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"createdAt"`
}

// ProviderResponse ответ с данными поставщика услуг
type ProviderResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	ServiceType   string           `json:"serviceType"`
	ContactInfo   string           `json:"contactInfo"`
	AverageRating int64            `json:"averageRating"`
	Reviews       []ReviewResponse `json:"reviews"`
	Availability  []int64          `json:"availability"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// ProviderListResponse ответ со списком поставщиков
type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
}

// Методы конвертации

// FromDomainProvider конвертирует domain модель в DTO
func FromDomainProvider(p *domain.ServiceProvider) *ProviderResponse {
	if p == nil {
		return nil
	}

	reviews := make([]ReviewResponse, len(p.Reviews))
	for i, r := range p.Reviews {
		reviews[i] = ReviewResponse{
			ClientID:  r.ClientID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
	}

	availability := p.Availability
	if availability == nil {
		availability = []int64{}
	}

	return &ProviderResponse{
		ID:            p.ID,
		Name:          p.Name,
		ServiceType:   p.ServiceType,
		ContactInfo:   p.ContactInfo,
		AverageRating: p.AverageRating,
		Reviews:       reviews,
		Availability:  availability,
		CreatedAt:     p.CreatedAt,
	}
}

// FromDomainProviderList конвертирует список domain моделей в DTO
func FromDomainProviderList(providers []*domain.ServiceProvider) *ProviderListResponse {
	resp := &ProviderListResponse{
		Providers: make([]ProviderResponse, 0, len(providers)),
	}

	for _, provider := range providers {
		if providerResp := FromDomainProvider(provider); providerResp != nil {
			resp.Providers = append(resp.Providers, *providerResp)
		}
	}

	return resp
}

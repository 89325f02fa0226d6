package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-MarketplaceService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceProviderID string `json:"serviceProviderId"`
	ClientID          string `json:"clientId"`
	ServiceDate       int64  `json:"serviceDate"` // unix-метка слота
	ServiceType       string `json:"serviceType"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                string `json:"id"`
	ServiceProviderID string `json:"serviceProviderId"`
	ClientID          string `json:"clientId"`
	ServiceDate       int64  `json:"serviceDate"`
	ServiceType       string `json:"serviceType"`
	Status            string `json:"status"`
	Reviewed          bool   `json:"reviewed"`
	CreatedAt         string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ServiceProviderID: r.ServiceProviderID,
		ClientID:          r.ClientID,
		ServiceDate:       r.ServiceDate,
		ServiceType:       r.ServiceType,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		ServiceProviderID: resp.ServiceProviderID,
		ClientID:          resp.ClientID,
		ServiceDate:       resp.ServiceDate,
		ServiceType:       resp.ServiceType,
		Status:            resp.Status,
		Reviewed:          resp.Reviewed,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}

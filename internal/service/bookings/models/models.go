package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// RescheduleBookingRequest запрос на перенос бронирования
type RescheduleBookingRequest struct {
	NewDate int64 `json:"newDate"` // unix-метка нового слота
}

// GetHistoryRequest запрос истории бронирований
// ID трактуется как идентификатор поставщика или клиента в зависимости от операции
type GetHistoryRequest struct {
	ID     string  `json:"id"`
	Status *string `json:"status,omitempty"` // опциональный фильтр по статусу
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                string    `json:"id"`
	ServiceProviderID string    `json:"serviceProviderId"`
	ClientID          string    `json:"clientId"`
	ServiceDate       int64     `json:"serviceDate"`
	ServiceType       string    `json:"serviceType"`
	Status            string    `json:"status"`
	Reviewed          bool      `json:"reviewed"`
	CreatedAt         time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                b.ID,
		ServiceProviderID: b.ServiceProviderID,
		ClientID:          b.ClientID,
		ServiceDate:       b.ServiceDate,
		ServiceType:       b.ServiceType,
		Status:            string(b.Status),
		Reviewed:          b.Reviewed,
		CreatedAt:         b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

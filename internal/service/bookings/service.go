package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/bookings/models"
)

// Service сервис переходов жизненного цикла бронирования и истории
// Создание бронирования и добавление отзыва живут в отдельных use case:
// они затрагивают несколько хранилищ и требуют сериализуемой транзакции
type Service struct {
	bookingRepo  BookingRepository
	providerRepo ProviderRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, providerRepo ProviderRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// Confirm подтверждает ожидающее бронирование
// Повторное подтверждение уже подтверждённого бронирования — ошибка, не no-op:
// вызывающая сторона обязана отслеживать состояние
func (s *Service) Confirm(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%s", id)

	booking, err := s.getBooking(ctx, id, "Confirm")
	if err != nil {
		return nil, err
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%s is not pending, status=%s", id, booking.Status)
		return nil, fmt.Errorf("%w: expected status %s, got %s", ErrNotPending, domain.StatusPending, booking.Status)
	}

	if err := s.updateStatus(ctx, id, domain.StatusConfirmed, "Confirm"); err != nil {
		return nil, err
	}

	booking.Status = domain.StatusConfirmed

	s.logger.Info("Confirm: successfully confirmed booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет ожидающее или подтверждённое бронирование
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	booking, err := s.getBooking(ctx, id, "Cancel")
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
		return nil, fmt.Errorf("%w: expected status %s or %s, got %s",
			ErrCannotCancel, domain.StatusPending, domain.StatusConfirmed, booking.Status)
	}

	if err := s.updateStatus(ctx, id, domain.StatusCanceled, "Cancel"); err != nil {
		return nil, err
	}

	booking.Status = domain.StatusCanceled

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// Complete завершает подтверждённое бронирование
// Это единственный путь в статус completed - предусловие для отзыва
func (s *Service) Complete(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Complete: completing booking id=%s", id)

	booking, err := s.getBooking(ctx, id, "Complete")
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("Complete: booking id=%s is not confirmed, status=%s", id, booking.Status)
		return nil, fmt.Errorf("%w: expected status %s, got %s", ErrNotConfirmed, domain.StatusConfirmed, booking.Status)
	}

	if err := s.updateStatus(ctx, id, domain.StatusCompleted, "Complete"); err != nil {
		return nil, err
	}

	booking.Status = domain.StatusCompleted

	s.logger.Info("Complete: successfully completed booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// Reschedule переносит ожидающее бронирование на новую дату
// Новая дата обязана присутствовать в списке доступности поставщика
func (s *Service) Reschedule(ctx context.Context, id string, req *models.RescheduleBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Reschedule: rescheduling booking id=%s to date=%d", id, req.NewDate)

	if req.NewDate <= 0 {
		s.logger.Warn("Reschedule: invalid new date=%d for booking id=%s", req.NewDate, id)
		return nil, fmt.Errorf("%w: newDate must be a positive unix timestamp", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, id, "Reschedule")
	if err != nil {
		return nil, err
	}

	if !booking.CanBeRescheduled() {
		s.logger.Warn("Reschedule: booking id=%s is not pending, status=%s", id, booking.Status)
		return nil, fmt.Errorf("%w: expected status %s, got %s", ErrNotPending, domain.StatusPending, booking.Status)
	}

	provider, err := s.providerRepo.GetByID(ctx, booking.ServiceProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("Reschedule: provider id=%s not found for booking id=%s", booking.ServiceProviderID, id)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("Reschedule: repository error for provider id=%s: %v", booking.ServiceProviderID, err)
		return nil, fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
	}

	if !provider.IsAvailableOn(req.NewDate) {
		s.logger.Warn("Reschedule: provider id=%s is not available on date=%d", provider.ID, req.NewDate)
		return nil, ErrDateUnavailable
	}

	if err := s.bookingRepo.UpdateServiceDate(ctx, id, req.NewDate); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Reschedule: booking id=%s not found during update", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Reschedule: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
	}

	booking.ServiceDate = req.NewDate

	s.logger.Info("Reschedule: successfully rescheduled booking id=%s to date=%d", id, req.NewDate)
	return models.FromDomainBooking(booking), nil
}

// GetProviderHistory возвращает историю бронирований поставщика
// Пустой результат считается условием "не найдено": отсутствие бронирований
// и отсутствие самого поставщика неразличимы для вызывающей стороны
func (s *Service) GetProviderHistory(ctx context.Context, req *models.GetHistoryRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetProviderHistory: fetching bookings for provider=%s, status=%v", req.ID, req.Status)

	status, err := s.toStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("GetProviderHistory: invalid status filter for provider=%s", req.ID)
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByProviderID(ctx, req.ID, status)
	if err != nil {
		s.logger.Error("GetProviderHistory: repository error for provider=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: GetProviderHistory - repository error: %v", ErrInternal, err)
	}

	if len(bookings) == 0 {
		s.logger.Warn("GetProviderHistory: no bookings found for provider=%s", req.ID)
		return nil, ErrNoBookingsFound
	}

	s.logger.Info("GetProviderHistory: successfully fetched %d bookings for provider=%s", len(bookings), req.ID)
	return models.FromDomainBookingList(bookings), nil
}

// GetClientHistory возвращает историю бронирований клиента
// Семантика пустого результата та же, что у GetProviderHistory
func (s *Service) GetClientHistory(ctx context.Context, req *models.GetHistoryRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientHistory: fetching bookings for client=%s, status=%v", req.ID, req.Status)

	status, err := s.toStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("GetClientHistory: invalid status filter for client=%s", req.ID)
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByClientID(ctx, req.ID, status)
	if err != nil {
		s.logger.Error("GetClientHistory: repository error for client=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: GetClientHistory - repository error: %v", ErrInternal, err)
	}

	if len(bookings) == 0 {
		s.logger.Warn("GetClientHistory: no bookings found for client=%s", req.ID)
		return nil, ErrNoBookingsFound
	}

	s.logger.Info("GetClientHistory: successfully fetched %d bookings for client=%s", len(bookings), req.ID)
	return models.FromDomainBookingList(bookings), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, id string, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) updateStatus(ctx context.Context, id string, status domain.BookingStatus, op string) error {
	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found during update", op, id)
			return ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}

func (s *Service) toStatusFilter(status *string) (*domain.BookingStatus, error) {
	if status == nil {
		return nil, nil
	}

	domainStatus, err := models.ToDomainBookingStatus(*status)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	return &domainStatus, nil
}

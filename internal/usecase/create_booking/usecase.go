package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	clientRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/client"
	providerRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-MarketplaceService/pkg/uuidgen"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	providerRepo ProviderRepository
	clientRepo   ClientRepository
	txManager    TransactionManager
	idGen        IDGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	providerRepo ProviderRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		clientRepo:   clientRepo,
		txManager:    txManager,
		idGen:        uuidgen.New(),
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции: между чтением списка доступности и записью бронирования
// поставщик не должен измениться
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: provider=%s, client=%s, date=%d, service_type=%s",
		req.ServiceProviderID, req.ClientID, req.ServiceDate, req.ServiceType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем поставщика
		provider, err := uc.providerRepo.GetByID(txCtx, req.ServiceProviderID)
		if err != nil {
			if errors.Is(err, providerRepo.ErrProviderNotFound) {
				uc.logger.Warn("CreateBooking: provider id=%s not found", req.ServiceProviderID)
				return ErrProviderNotFound
			}
			uc.logger.Error("CreateBooking: failed to get provider id=%s: %v", req.ServiceProviderID, err)
			return fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
		}

		// 2.2. Проверяем существование клиента
		if _, err := uc.clientRepo.GetByID(txCtx, req.ClientID); err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateBooking: client id=%s not found", req.ClientID)
				return ErrClientNotFound
			}
			uc.logger.Error("CreateBooking: failed to get client id=%s: %v", req.ClientID, err)
			return fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}

		// 2.3. Проверяем, что дата есть в списке доступности поставщика
		// Проверка на точное вхождение: несколько бронирований могут попасть
		// на один и тот же слот, защита от двойного бронирования не входит в контракт
		if !provider.IsAvailableOn(req.ServiceDate) {
			uc.logger.Warn("CreateBooking: provider id=%s is not available on date=%d",
				req.ServiceProviderID, req.ServiceDate)
			return ErrDateUnavailable
		}

		// 2.4. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			ID:                uc.idGen.NewID(),
			ServiceProviderID: req.ServiceProviderID,
			ClientID:          req.ClientID,
			ServiceDate:       req.ServiceDate,
			ServiceType:       req.ServiceType,
			Status:            domain.StatusPending,
			Reviewed:          false,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:                result.ID,
		ServiceProviderID: result.ServiceProviderID,
		ClientID:          result.ClientID,
		ServiceDate:       result.ServiceDate,
		ServiceType:       result.ServiceType,
		Status:            string(result.Status),
		Reviewed:          result.Reviewed,
		CreatedAt:         result.CreatedAt,
	}, nil
}

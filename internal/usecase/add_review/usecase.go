package add_review

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	providerRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/provider"
)

// UseCase use case добавления отзыва по завершённому бронированию
type UseCase struct {
	bookingRepo  BookingRepository
	providerRepo ProviderRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	providerRepo ProviderRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case добавления отзыва
// Чтение поставщика, добавление отзыва, пересчёт среднего и установка
// флага reviewed выполняются в одной сериализуемой транзакции: два
// конкурентных отзыва не должны потерять друг друга при записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddReview: booking=%s, rating=%d", req.BookingID, req.Rating)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddReview: validation failed: %v", err)
		return nil, err
	}

	var result *domain.ServiceProvider

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("AddReview: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("AddReview: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Отзыв допустим только по завершённому бронированию и только один раз
		if booking.Status != domain.StatusCompleted {
			uc.logger.Warn("AddReview: booking id=%s is not completed, status=%s", req.BookingID, booking.Status)
			return fmt.Errorf("%w: expected status %s, got %s", ErrNotCompleted, domain.StatusCompleted, booking.Status)
		}
		if booking.Reviewed {
			uc.logger.Warn("AddReview: booking id=%s has already been reviewed", req.BookingID)
			return ErrAlreadyReviewed
		}

		// 2.3. Получаем поставщика
		provider, err := uc.providerRepo.GetByID(txCtx, booking.ServiceProviderID)
		if err != nil {
			if errors.Is(err, providerRepo.ErrProviderNotFound) {
				uc.logger.Warn("AddReview: provider id=%s not found for booking id=%s",
					booking.ServiceProviderID, req.BookingID)
				return ErrProviderNotFound
			}
			uc.logger.Error("AddReview: failed to get provider id=%s: %v", booking.ServiceProviderID, err)
			return fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
		}

		// 2.4. Автор отзыва - клиент бронирования, не поле запроса
		review := domain.Review{
			ClientID:  booking.ClientID,
			Rating:    req.Rating,
			Comment:   req.Comment,
			CreatedAt: uc.timeProvider.Now().Unix(),
		}

		// 2.5. Добавляем отзыв и пересчитываем средний рейтинг
		provider.AddReview(review)

		// 2.6. Записываем поставщика обратно под тем же ключом
		if err := uc.providerRepo.Update(txCtx, provider); err != nil {
			uc.logger.Error("AddReview: failed to update provider id=%s: %v", provider.ID, err)
			return fmt.Errorf("%w: failed to update provider: %v", ErrInternal, err)
		}

		// 2.7. Помечаем бронирование, чтобы исключить повторный отзыв
		if err := uc.bookingRepo.MarkReviewed(txCtx, booking.ID); err != nil {
			uc.logger.Error("AddReview: failed to mark booking id=%s as reviewed: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to mark booking as reviewed: %v", ErrInternal, err)
		}

		result = provider
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AddReview: successfully added review for provider id=%s, new average=%d",
		result.ID, result.AverageRating)

	reviews := make([]ReviewItem, len(result.Reviews))
	for i, r := range result.Reviews {
		reviews[i] = ReviewItem{
			ClientID:  r.ClientID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
	}

	return &Response{
		ID:            result.ID,
		Name:          result.Name,
		ServiceType:   result.ServiceType,
		ContactInfo:   result.ContactInfo,
		AverageRating: result.AverageRating,
		Reviews:       reviews,
		Availability:  result.Availability,
		CreatedAt:     result.CreatedAt,
	}, nil
}

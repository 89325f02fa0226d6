package providers

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers/models"
)

// Service сервис для работы с поставщиками услуг
type Service struct {
	providerRepo ProviderRepository
	idGen        IDGenerator
	logger       Logger
}

// NewService создает новый экземпляр сервиса поставщиков
func NewService(providerRepo ProviderRepository, idGen IDGenerator, logger Logger) *Service {
	return &Service{
		providerRepo: providerRepo,
		idGen:        idGen,
		logger:       logger,
	}
}

// Create регистрирует нового поставщика услуг
// Новый поставщик начинает без отзывов и с нулевым средним рейтингом
func (s *Service) Create(ctx context.Context, req *models.CreateProviderRequest) (*models.ProviderResponse, error) {
	s.logger.Info("Create: registering provider name=%s, service_type=%s", req.Name, req.ServiceType)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	provider := &domain.ServiceProvider{
		ID:            s.idGen.NewID(),
		Name:          req.Name,
		ServiceType:   req.ServiceType,
		ContactInfo:   req.ContactInfo,
		AverageRating: 0,
		Reviews:       []domain.Review{},
		Availability:  req.Availability,
	}

	created, err := s.providerRepo.Create(ctx, provider)
	if err != nil {
		s.logger.Error("Create: repository error for provider name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered provider id=%s", created.ID)
	return models.FromDomainProvider(created), nil
}

// GetAll возвращает всех поставщиков каталога
// Пустой каталог считается условием "не найдено", а не пустым списком
func (s *Service) GetAll(ctx context.Context) (*models.ProviderListResponse, error) {
	s.logger.Info("GetAll: fetching all providers")

	providers, err := s.providerRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	if len(providers) == 0 {
		s.logger.Warn("GetAll: no providers registered")
		return nil, ErrNoProvidersFound
	}

	s.logger.Info("GetAll: successfully fetched %d providers", len(providers))
	return models.FromDomainProviderList(providers), nil
}

package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	clientRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/client"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo ClientRepository
	idGen      IDGenerator
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, idGen IDGenerator, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

// Create регистрирует нового клиента
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: registering client name=%s", req.Name)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	client := &domain.Client{
		ID:          s.idGen.NewID(),
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
	}

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		s.logger.Error("Create: repository error for client name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered client id=%s", created.ID)
	return models.FromDomainClient(created), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ClientResponse, error) {
	s.logger.Info("GetByID: fetching client id=%s", id)

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

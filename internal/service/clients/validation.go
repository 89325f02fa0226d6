package clients

import (
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/clients/models"
)

// validateCreateRequest валидирует запрос на регистрацию клиента
func validateCreateRequest(req *models.CreateClientRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.ContactInfo == "" {
		return fmt.Errorf("%w: contactInfo is required", ErrInvalidInput)
	}
	if len(req.ContactInfo) > domain.MaxContactInfoLength {
		return fmt.Errorf("%w: contactInfo exceeds %d characters", ErrInvalidInput, domain.MaxContactInfoLength)
	}

	return nil
}

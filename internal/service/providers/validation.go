package providers

import (
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/providers/models"
)

// validateCreateRequest валидирует запрос на регистрацию поставщика
func validateCreateRequest(req *models.CreateProviderRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.ServiceType == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}
	if len(req.ServiceType) > domain.MaxServiceTypeLength {
		return fmt.Errorf("%w: serviceType exceeds %d characters", ErrInvalidInput, domain.MaxServiceTypeLength)
	}

	if req.ContactInfo == "" {
		return fmt.Errorf("%w: contactInfo is required", ErrInvalidInput)
	}
	if len(req.ContactInfo) > domain.MaxContactInfoLength {
		return fmt.Errorf("%w: contactInfo exceeds %d characters", ErrInvalidInput, domain.MaxContactInfoLength)
	}

	// Список доступности может быть пустым - такой поставщик просто никогда не доступен
	for _, slot := range req.Availability {
		if slot <= 0 {
			return fmt.Errorf("%w: availability slots must be positive unix timestamps", ErrInvalidInput)
		}
	}

	return nil
}

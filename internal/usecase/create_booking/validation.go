package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Валидация выполняется до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if req.ServiceProviderID == "" {
		return fmt.Errorf("%w: serviceProviderId is required", ErrInvalidInput)
	}

	if req.ClientID == "" {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	if req.ServiceDate <= 0 {
		return fmt.Errorf("%w: serviceDate must be a positive unix timestamp", ErrInvalidInput)
	}

	if req.ServiceType == "" {
		return fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}
	if len(req.ServiceType) > domain.MaxServiceTypeLength {
		return fmt.Errorf("%w: serviceType exceeds %d characters", ErrInvalidInput, domain.MaxServiceTypeLength)
	}

	return nil
}

package courts

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// validateCreateRequest валидирует запрос на создание корта
func validateCreateRequest(req *models.CreateCourtRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(req.Name) > domain.MaxCourtNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.PricePerHour <= 0 {
		return fmt.Errorf("%w: pricePerHour must be positive", ErrInvalidInput)
	}

	if req.OpenHour < 0 || req.CloseHour > 24 || req.OpenHour >= req.CloseHour {
		return fmt.Errorf("%w: invalid operating hours", ErrInvalidInput)
	}

	return nil
}

// validateUpdateRequest валидирует запрос на изменение корта
func validateUpdateRequest(req *models.UpdateCourtRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Name != nil && (*req.Name == "" || len(*req.Name) > domain.MaxCourtNameLength) {
		return fmt.Errorf("%w: invalid name", ErrInvalidInput)
	}

	return nil
}

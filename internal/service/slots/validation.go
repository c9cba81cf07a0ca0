package slots

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/slots/models"
)

// validateCreateRequest валидирует запрос на создание слота
func validateCreateRequest(req *models.CreateSlotRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.SlotDate.IsZero() {
		return fmt.Errorf("%w: slotDate is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if req.PriceOverride != nil && *req.PriceOverride <= 0 {
		return fmt.Errorf("%w: priceOverride must be positive", ErrInvalidInput)
	}

	if err := validateMaintenanceReason(req.MaintenanceReason); err != nil {
		return err
	}

	return nil
}

// validateUpdateRequest валидирует запрос на изменение слота
func validateUpdateRequest(req *models.UpdateSlotRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if !req.ChangesTimesOrPrice() && !req.ChangesMaintenance() {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
	}

	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
	}

	if req.PriceOverride != nil && *req.PriceOverride <= 0 {
		return fmt.Errorf("%w: priceOverride must be positive", ErrInvalidInput)
	}

	if req.PriceOverride != nil && req.ClearPriceOverride {
		return fmt.Errorf("%w: priceOverride and clearPriceOverride are mutually exclusive", ErrInvalidInput)
	}

	if err := validateMaintenanceReason(req.MaintenanceReason); err != nil {
		return err
	}

	return nil
}

func validateMaintenanceReason(reason *string) error {
	if reason != nil && len(*reason) > domain.MaxMaintenanceReasonLength {
		return fmt.Errorf("%w: maintenance reason is too long", ErrInvalidInput)
	}
	return nil
}

package select_window

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if req.Hours < domain.MinWindowHours || req.Hours > domain.MaxWindowHours {
		return fmt.Errorf("%w: hours must be between %d and %d",
			ErrInvalidInput, domain.MinWindowHours, domain.MaxWindowHours)
	}

	return nil
}

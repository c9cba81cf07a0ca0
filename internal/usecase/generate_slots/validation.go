package generate_slots

import (
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	rangeDays := int(req.EndDate.Sub(req.StartDate).Hours()/24) + 1
	if rangeDays > domain.MaxGenerationRangeDays {
		return fmt.Errorf("%w: date range exceeds %d days", ErrInvalidInput, domain.MaxGenerationRangeDays)
	}

	if req.Advanced != nil {
		return validateAdvancedSpec(req.Advanced)
	}

	if req.SlotDurationMinutes != 0 {
		if err := validateDuration(req.SlotDurationMinutes); err != nil {
			return err
		}
	}

	return nil
}

// validateAdvancedSpec валидирует расширенную спецификацию генерации
func validateAdvancedSpec(spec *AdvancedSpec) error {
	if len(spec.Weekdays) == 0 {
		return fmt.Errorf("%w: at least one weekday is required", ErrInvalidInput)
	}

	if spec.StartTime.IsZero() || spec.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end times are required", ErrInvalidInput)
	}

	if err := spec.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := spec.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !spec.StartTime.IsBefore(spec.EndTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if err := validateDuration(spec.SlotDurationMinutes); err != nil {
		return err
	}

	if spec.CustomPricing {
		if spec.WeekdayPrice <= 0 || spec.WeekendPrice <= 0 {
			return fmt.Errorf("%w: custom prices must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// validateCourtWindow проверяет, что расширенное окно времени лежит в рабочих часах корта
func validateCourtWindow(court *domain.Court, spec *AdvancedSpec) error {
	if !court.ContainsInterval(spec.StartTime, spec.EndTime) {
		return fmt.Errorf("%w: time window %s-%s is outside operating hours %s-%s",
			ErrInvalidInput, spec.StartTime, spec.EndTime, court.OperatingStart(), court.OperatingEnd())
	}
	return nil
}

func validateDuration(minutes int) error {
	if minutes < domain.MinSlotDurationMinutes || minutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	return nil
}

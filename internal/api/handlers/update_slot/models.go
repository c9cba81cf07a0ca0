package update_slot

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/service/slots/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// UpdateSlotRequest HTTP request model
// nil-поля не меняются
type UpdateSlotRequest struct {
	StartTime          *string  `json:"startTime,omitempty"`
	EndTime            *string  `json:"endTime,omitempty"`
	PriceOverride      *float64 `json:"priceOverride,omitempty"`
	ClearPriceOverride bool     `json:"clearPriceOverride,omitempty"`
	MaintenanceBlocked *bool    `json:"maintenanceBlocked,omitempty"`
	MaintenanceReason  *string  `json:"maintenanceReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSlotRequest) ToServiceRequest(userID int64) (*models.UpdateSlotRequest, error) {
	req := &models.UpdateSlotRequest{
		UserID:             userID,
		PriceOverride:      r.PriceOverride,
		ClearPriceOverride: r.ClearPriceOverride,
		MaintenanceBlocked: r.MaintenanceBlocked,
		MaintenanceReason:  r.MaintenanceReason,
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}

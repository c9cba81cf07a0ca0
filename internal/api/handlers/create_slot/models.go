package create_slot

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/slots/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	SlotDate           string   `json:"slotDate"`  // "2026-09-01"
	StartTime          string   `json:"startTime"` // "10:00"
	EndTime            string   `json:"endTime"`   // "11:00"
	PriceOverride      *float64 `json:"priceOverride,omitempty"`
	MaintenanceBlocked bool     `json:"maintenanceBlocked,omitempty"`
	MaintenanceReason  *string  `json:"maintenanceReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSlotRequest) ToServiceRequest(userID, courtID int64) (*models.CreateSlotRequest, error) {
	slotDate, err := time.Parse(domain.DateFormat, r.SlotDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateSlotRequest{
		UserID:             userID,
		CourtID:            courtID,
		SlotDate:           slotDate,
		StartTime:          startTime,
		EndTime:            endTime,
		PriceOverride:      r.PriceOverride,
		MaintenanceBlocked: r.MaintenanceBlocked,
		MaintenanceReason:  r.MaintenanceReason,
	}, nil
}

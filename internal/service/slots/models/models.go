package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модели

// CreateSlotRequest запрос на создание одиночного слота
type CreateSlotRequest struct {
	UserID             int64            `json:"userId"`
	CourtID            int64            `json:"courtId"`
	SlotDate           time.Time        `json:"slotDate"`
	StartTime          types.TimeString `json:"startTime"`
	EndTime            types.TimeString `json:"endTime"`
	PriceOverride      *float64         `json:"priceOverride,omitempty"`
	MaintenanceBlocked bool             `json:"maintenanceBlocked,omitempty"`
	MaintenanceReason  *string          `json:"maintenanceReason,omitempty"`
}

// UpdateSlotRequest запрос на изменение слота
// nil-поля не меняются
type UpdateSlotRequest struct {
	UserID             int64             `json:"userId"`
	StartTime          *types.TimeString `json:"startTime,omitempty"`
	EndTime            *types.TimeString `json:"endTime,omitempty"`
	PriceOverride      *float64          `json:"priceOverride,omitempty"`
	ClearPriceOverride bool              `json:"clearPriceOverride,omitempty"`
	MaintenanceBlocked *bool             `json:"maintenanceBlocked,omitempty"`
	MaintenanceReason  *string           `json:"maintenanceReason,omitempty"`
}

// ChangesTimesOrPrice сообщает, трогает ли запрос замороженные
// после подтверждённого бронирования поля
func (r *UpdateSlotRequest) ChangesTimesOrPrice() bool {
	return r.StartTime != nil || r.EndTime != nil || r.PriceOverride != nil || r.ClearPriceOverride
}

// ChangesMaintenance сообщает, трогает ли запрос maintenance-поля
func (r *UpdateSlotRequest) ChangesMaintenance() bool {
	return r.MaintenanceBlocked != nil || r.MaintenanceReason != nil
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID                 int64    `json:"id"`
	CourtID            int64    `json:"courtId"`
	SlotDate           string   `json:"slotDate"`  // "2026-09-01"
	StartTime          string   `json:"startTime"` // "10:00"
	EndTime            string   `json:"endTime"`   // "11:00"
	PriceOverride      *float64 `json:"priceOverride,omitempty"`
	MaintenanceBlocked bool     `json:"maintenanceBlocked"`
	MaintenanceReason  *string  `json:"maintenanceReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainSlot конвертирует domain слот в response
func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	return &SlotResponse{
		ID:                 s.ID,
		CourtID:            s.CourtID,
		SlotDate:           s.SlotDate.Format(domain.DateFormat),
		StartTime:          s.StartTime.String(),
		EndTime:            s.EndTime.String(),
		PriceOverride:      s.PriceOverride,
		MaintenanceBlocked: s.MaintenanceBlocked,
		MaintenanceReason:  s.MaintenanceReason,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

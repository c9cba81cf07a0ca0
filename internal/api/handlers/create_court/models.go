package create_court

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// CreateCourtRequest HTTP request model
type CreateCourtRequest struct {
	Name         string  `json:"name"`
	Sport        string  `json:"sport"`
	PricePerHour float64 `json:"pricePerHour"`
	OpenHour     int     `json:"openHour"`
	CloseHour    int     `json:"closeHour"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCourtRequest) ToServiceRequest(userID, facilityID int64) *models.CreateCourtRequest {
	return &models.CreateCourtRequest{
		UserID:       userID,
		FacilityID:   facilityID,
		Name:         r.Name,
		Sport:        r.Sport,
		PricePerHour: r.PricePerHour,
		OpenHour:     r.OpenHour,
		CloseHour:    r.CloseHour,
	}
}

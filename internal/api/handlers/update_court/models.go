package update_court

import (
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// UpdateCourtRequest HTTP request model
// nil-поля не меняются
type UpdateCourtRequest struct {
	Name         *string  `json:"name,omitempty"`
	Sport        *string  `json:"sport,omitempty"`
	PricePerHour *float64 `json:"pricePerHour,omitempty"`
	OpenHour     *int     `json:"openHour,omitempty"`
	CloseHour    *int     `json:"closeHour,omitempty"`
	Active       *bool    `json:"active,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateCourtRequest) ToServiceRequest(userID int64) *models.UpdateCourtRequest {
	return &models.UpdateCourtRequest{
		UserID:       userID,
		Name:         r.Name,
		Sport:        r.Sport,
		PricePerHour: r.PricePerHour,
		OpenHour:     r.OpenHour,
		CloseHour:    r.CloseHour,
		Active:       r.Active,
	}
}

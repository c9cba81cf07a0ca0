package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модели

// CreateCourtRequest запрос на создание корта
type CreateCourtRequest struct {
	UserID       int64   `json:"userId"`
	FacilityID   int64   `json:"facilityId"`
	Name         string  `json:"name"`
	Sport        string  `json:"sport"`
	PricePerHour float64 `json:"pricePerHour"`
	OpenHour     int     `json:"openHour"`
	CloseHour    int     `json:"closeHour"`
}

// UpdateCourtRequest запрос на изменение корта
// nil-поля не меняются
type UpdateCourtRequest struct {
	UserID       int64    `json:"userId"`
	Name         *string  `json:"name,omitempty"`
	Sport        *string  `json:"sport,omitempty"`
	PricePerHour *float64 `json:"pricePerHour,omitempty"`
	OpenHour     *int     `json:"openHour,omitempty"`
	CloseHour    *int     `json:"closeHour,omitempty"`
	Active       *bool    `json:"active,omitempty"`
}

// Response модели

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID           int64   `json:"id"`
	FacilityID   int64   `json:"facilityId"`
	Name         string  `json:"name"`
	Sport        string  `json:"sport"`
	PricePerHour float64 `json:"pricePerHour"`
	OpenHour     int     `json:"openHour"`
	CloseHour    int     `json:"closeHour"`
	Active       bool    `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
	Total  int             `json:"total"`
}

// FromDomainCourt конвертирует domain корт в response
func FromDomainCourt(c *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:           c.ID,
		FacilityID:   c.FacilityID,
		Name:         c.Name,
		Sport:        string(c.Sport),
		PricePerHour: c.PricePerHour,
		OpenHour:     c.OpenHour,
		CloseHour:    c.CloseHour,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromDomainCourtList конвертирует список domain кортов в response
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	items := make([]CourtResponse, 0, len(courts))
	for _, c := range courts {
		items = append(items, *FromDomainCourt(c))
	}

	return &CourtListResponse{
		Courts: items,
		Total:  len(items),
	}
}

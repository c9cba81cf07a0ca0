package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// SportType represents the sport a court is built for
type SportType string

const (
	SportBadminton   SportType = "badminton"
	SportTennis      SportType = "tennis"
	SportFootball    SportType = "football"
	SportCricket     SportType = "cricket"
	SportBasketball  SportType = "basketball"
	SportVolleyball  SportType = "volleyball"
	SportSquash      SportType = "squash"
	SportTableTennis SportType = "table_tennis"
)

// AllSportTypes список всех поддерживаемых видов спорта
var AllSportTypes = []SportType{
	SportBadminton,
	SportTennis,
	SportFootball,
	SportCricket,
	SportBasketball,
	SportVolleyball,
	SportSquash,
	SportTableTennis,
}

// ParseSportType парсит строку в SportType
// Возвращает ошибку для неизвестных видов спорта
func ParseSportType(s string) (SportType, error) {
	for _, sport := range AllSportTypes {
		if s == string(sport) {
			return sport, nil
		}
	}
	return "", fmt.Errorf("unknown sport type: %q", s)
}

// Court represents a single bookable unit within a facility
type Court struct {
	ID           int64
	FacilityID   int64
	Name         string
	Sport        SportType
	PricePerHour float64
	OpenHour     int // Час начала работы (0-23)
	CloseHour    int // Час окончания работы (0-23), строго больше OpenHour
	Active       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOperatingHour returns true if the given clock hour falls within operating hours
func (c *Court) IsOperatingHour(hour int) bool {
	return hour >= c.OpenHour && hour < c.CloseHour
}

// OperatingStart returns the opening time as a TimeString
func (c *Court) OperatingStart() types.TimeString {
	return types.FromHour(c.OpenHour)
}

// OperatingEnd returns the closing time as a TimeString
func (c *Court) OperatingEnd() types.TimeString {
	return types.FromHour(c.CloseHour)
}

// ContainsInterval returns true if [start, end) fits within operating hours
func (c *Court) ContainsInterval(start, end types.TimeString) bool {
	return !start.IsBefore(c.OperatingStart()) && !end.IsAfter(c.OperatingEnd())
}

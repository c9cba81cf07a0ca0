package domain

import (
	"math"
	"time"
)

// Peak hour pricing
// Пиковые часы: утро [6, 9] и вечер [18, 21] включительно
const (
	PeakMorningStartHour = 6
	PeakMorningEndHour   = 9
	PeakEveningStartHour = 18
	PeakEveningEndHour   = 21

	PeakPriceMultiplier = 1.2
)

// IsPeakHour returns true if the clock hour falls into a peak range
func IsPeakHour(hour int) bool {
	if hour >= PeakMorningStartHour && hour <= PeakMorningEndHour {
		return true
	}
	if hour >= PeakEveningStartHour && hour <= PeakEveningEndHour {
		return true
	}
	return false
}

// PeakPrice applies the peak multiplier to the base price,
// rounded to the nearest whole currency unit
func PeakPrice(base float64) float64 {
	return math.Round(base * PeakPriceMultiplier)
}

// IsWeekend returns true if the date falls on Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

package domain

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// TimeSlot represents a concrete bookable interval for one court
// Интервал полуоткрытый: [StartTime, EndTime)
type TimeSlot struct {
	ID        int64
	CourtID   int64
	SlotDate  time.Time // Дата слота (без времени)
	StartTime types.TimeString
	EndTime   types.TimeString

	// PriceOverride цена слота; если nil - используется цена корта по умолчанию
	PriceOverride *float64

	MaintenanceBlocked bool
	MaintenanceReason  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectivePrice returns the slot's override price, falling back to the court default
func (s *TimeSlot) EffectivePrice(courtDefault float64) float64 {
	if s.PriceOverride != nil {
		return *s.PriceOverride
	}
	return courtDefault
}

// Overlaps returns true if this slot's interval overlaps other's on the same date
// Граничащие интервалы (конец одного == начало другого) пересечением не считаются
func (s *TimeSlot) Overlaps(other *TimeSlot) bool {
	if !isSameDay(s.SlotDate, other.SlotDate) {
		return false
	}
	return IntervalsOverlap(s.StartTime, s.EndTime, other.StartTime, other.EndTime)
}

// IsAvailable derives the slot's availability from its maintenance flag
// and the statuses of its bookings. This is the single definition of "bookable":
// available = not maintenance-blocked and no confirmed booking.
func (s *TimeSlot) IsAvailable(bookings []*Booking) bool {
	if s.MaintenanceBlocked {
		return false
	}
	for _, b := range bookings {
		if b.TimeSlotID == s.ID && b.Status == StatusConfirmed {
			return false
		}
	}
	return true
}

// EndInstant returns the slot's end as an instant in the given location
func (s *TimeSlot) EndInstant(loc *time.Location) time.Time {
	return combineDateTime(s.SlotDate, s.EndTime, loc)
}

// StartInstant returns the slot's start as an instant in the given location
func (s *TimeSlot) StartInstant(loc *time.Location) time.Time {
	return combineDateTime(s.SlotDate, s.StartTime, loc)
}

// IntervalsOverlap проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
func IntervalsOverlap(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// SlotRangeFilter фильтр для выборки слотов корта за период
type SlotRangeFilter struct {
	CourtID   int64
	StartDate time.Time
	EndDate   time.Time
}

// combineDateTime собирает instant из даты и времени "HH:MM"
func combineDateTime(date time.Time, t types.TimeString, loc *time.Location) time.Time {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

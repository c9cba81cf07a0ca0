package domain

import "github.com/m04kA/SMC-CourtBookingService/pkg/types"

// WindowSelection результат выбора последовательного окна слотов одного корта
type WindowSelection struct {
	CourtID    int64
	SlotIDs    []int64 // Идентификаторы слотов в порядке следования по времени
	Slots      []*TimeSlot
	TotalPrice float64
}

// SelectConsecutiveWindow walks the court's time-ordered slots for one day and
// checks whether `count` consecutive available slots exist starting at startTime.
// Consecutive means each next slot starts exactly where the previous one ends.
// The selection is all-or-nothing: a maintenance block, a confirmed booking or
// a gap anywhere in the run rejects the whole origin and (nil, false) is
// returned - callers treat that as a normal "not selectable" state, not an error.
//
// slots должны принадлежать одному корту и быть отсортированы по StartTime
func SelectConsecutiveWindow(
	slots []*TimeSlot,
	bookings []*Booking,
	startTime types.TimeString,
	count int,
	courtDefaultPrice float64,
) (*WindowSelection, bool) {
	if count <= 0 {
		return nil, false
	}

	// Ищем стартовый слот
	origin := -1
	for i, slot := range slots {
		if slot.StartTime == startTime {
			origin = i
			break
		}
	}
	if origin == -1 {
		return nil, false
	}

	if origin+count > len(slots) {
		return nil, false
	}

	selection := &WindowSelection{
		CourtID: slots[origin].CourtID,
		SlotIDs: make([]int64, 0, count),
		Slots:   make([]*TimeSlot, 0, count),
	}

	prevEnd := startTime
	for i := origin; i < origin+count; i++ {
		slot := slots[i]

		// Разрыв между слотами - окно не является непрерывным
		if slot.StartTime != prevEnd {
			return nil, false
		}

		if !slot.IsAvailable(bookings) {
			return nil, false
		}

		selection.SlotIDs = append(selection.SlotIDs, slot.ID)
		selection.Slots = append(selection.Slots, slot)
		selection.TotalPrice += slot.EffectivePrice(courtDefaultPrice)
		prevEnd = slot.EndTime
	}

	return selection, true
}

package get_available_slots

import (
	"sort"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// buildDaySchedule собирает расписание корта на день:
// материализованные слоты с рассчитанной доступностью и эффективной ценой
// плюс рабочие часы, не покрытые ни одним слотом.
// Для непокрытого часа строки в БД нет - ни бронирования, ни блокировки
// на обслуживание существовать не может, доступность определяется
// только активностью корта
func buildDaySchedule(
	court *domain.Court,
	slots []*domain.TimeSlot,
	bookings []*domain.Booking,
) []Slot {
	result := make([]Slot, 0, len(slots))

	for _, s := range slots {
		id := s.ID
		result = append(result, Slot{
			ID:                 &id,
			StartTime:          s.StartTime,
			EndTime:            s.EndTime,
			Price:              s.EffectivePrice(court.PricePerHour),
			Available:          s.IsAvailable(bookings),
			MaintenanceBlocked: s.MaintenanceBlocked,
		})
	}

	for hour := court.OpenHour; hour < court.CloseHour; hour++ {
		hourStart := types.FromHour(hour)
		hourEnd := types.FromHour(hour + 1)

		if hourCovered(slots, hourStart, hourEnd) {
			continue
		}

		result = append(result, Slot{
			StartTime: hourStart,
			EndTime:   hourEnd,
			Price:     court.PricePerHour,
			Available: court.Active,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	return result
}

// hourCovered проверяет, пересекает ли рабочий час хотя бы один материализованный слот
func hourCovered(slots []*domain.TimeSlot, hourStart, hourEnd types.TimeString) bool {
	for _, s := range slots {
		if domain.IntervalsOverlap(s.StartTime, s.EndTime, hourStart, hourEnd) {
			return true
		}
	}
	return false
}

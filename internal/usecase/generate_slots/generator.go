package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// generateSimpleCandidates генерирует кандидатов в простом режиме:
// для каждой даты диапазона - один слот на каждый рабочий час корта.
// Пиковые часы получают override-цену c множителем, остальные слоты
// цену не фиксируют и читаются по текущей цене корта
func generateSimpleCandidates(
	court *domain.Court,
	startDate, endDate time.Time,
	durationMinutes int,
) ([]*domain.TimeSlot, error) {
	candidates := make([]*domain.TimeSlot, 0)

	closeTime := court.OperatingEnd()

	for date := dateOnly(startDate); !date.After(dateOnly(endDate)); date = date.AddDate(0, 0, 1) {
		for hour := court.OpenHour; hour < court.CloseHour; hour++ {
			start := types.FromHour(hour)

			end, err := start.AddMinutes(durationMinutes)
			if err != nil {
				return nil, err
			}

			// Хвостовой слот, не влезающий до закрытия, не создаётся
			if end.IsAfter(closeTime) {
				continue
			}

			slot := &domain.TimeSlot{
				CourtID:   court.ID,
				SlotDate:  date,
				StartTime: start,
				EndTime:   end,
			}

			if domain.IsPeakHour(hour) {
				peak := domain.PeakPrice(court.PricePerHour)
				slot.PriceOverride = &peak
			}

			candidates = append(candidates, slot)
		}
	}

	return candidates, nil
}

// generateAdvancedCandidates генерирует кандидатов по расширенной спецификации:
// только выбранные дни недели, произвольное окно времени, произвольный шаг.
// Неполный хвостовой слот не создаётся
func generateAdvancedCandidates(
	court *domain.Court,
	startDate, endDate time.Time,
	spec *AdvancedSpec,
) ([]*domain.TimeSlot, error) {
	weekdaySet := make(map[time.Weekday]bool, len(spec.Weekdays))
	for _, wd := range spec.Weekdays {
		weekdaySet[wd] = true
	}

	candidates := make([]*domain.TimeSlot, 0)

	for date := dateOnly(startDate); !date.After(dateOnly(endDate)); date = date.AddDate(0, 0, 1) {
		if !weekdaySet[date.Weekday()] {
			continue
		}

		current := spec.StartTime
		for current.IsBefore(spec.EndTime) {
			end, err := current.AddMinutes(spec.SlotDurationMinutes)
			if err != nil {
				break
			}
			if end.IsAfter(spec.EndTime) {
				break
			}

			slot := &domain.TimeSlot{
				CourtID:   court.ID,
				SlotDate:  date,
				StartTime: current,
				EndTime:   end,
			}

			if spec.CustomPricing {
				price := spec.WeekdayPrice
				if domain.IsWeekend(date) {
					price = spec.WeekendPrice
				}
				slot.PriceOverride = &price
			}

			candidates = append(candidates, slot)
			current = end
		}
	}

	return candidates, nil
}

// filterAgainstExisting отбрасывает кандидатов, пересекающихся с существующими слотами.
// Чистая разность множеств: пересекающийся кандидат отбрасывается целиком, без усечения
func filterAgainstExisting(candidates, existing []*domain.TimeSlot) []*domain.TimeSlot {
	result := make([]*domain.TimeSlot, 0, len(candidates))

	for _, candidate := range candidates {
		overlapping := false
		for _, ex := range existing {
			if candidate.Overlaps(ex) {
				overlapping = true
				break
			}
		}
		if !overlapping {
			result = append(result, candidate)
		}
	}

	return result
}

// dropInternalOverlaps отбрасывает кандидатов, пересекающихся с ранее принятыми
// кандидатами того же пакета. Кандидаты приходят упорядоченными по дате и времени,
// поэтому достаточно сравнивать с последним принятым на ту же дату
func dropInternalOverlaps(candidates []*domain.TimeSlot) []*domain.TimeSlot {
	result := make([]*domain.TimeSlot, 0, len(candidates))

	var lastAccepted *domain.TimeSlot
	for _, candidate := range candidates {
		if lastAccepted != nil && candidate.Overlaps(lastAccepted) {
			continue
		}
		result = append(result, candidate)
		lastAccepted = candidate
	}

	return result
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

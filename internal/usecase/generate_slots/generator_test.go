package generate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

func testCourt() *domain.Court {
	return &domain.Court{
		ID:           1,
		FacilityID:   10,
		Name:         "Корт 1",
		Sport:        domain.SportBadminton,
		PricePerHour: 450,
		OpenHour:     6,
		CloseHour:    23,
		Active:       true,
	}
}

func TestGenerateSimpleCandidates_FullDay(t *testing.T) {
	court := testCourt()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	candidates, err := generateSimpleCandidates(court, date, date, domain.DefaultSlotDurationMinutes)
	require.NoError(t, err)

	// Корт 6:00-23:00 дает 17 часовых слотов
	require.Len(t, candidates, 17)

	assert.Equal(t, types.TimeString("06:00"), candidates[0].StartTime)
	assert.Equal(t, types.TimeString("07:00"), candidates[0].EndTime)
	assert.Equal(t, types.TimeString("22:00"), candidates[16].StartTime)
	assert.Equal(t, types.TimeString("23:00"), candidates[16].EndTime)

	peakHours := map[int]bool{6: true, 7: true, 8: true, 9: true, 18: true, 19: true, 20: true, 21: true}

	for _, slot := range candidates {
		minutes, err := slot.StartTime.Minutes()
		require.NoError(t, err)
		hour := minutes / 60

		if peakHours[hour] {
			require.NotNil(t, slot.PriceOverride, "hour %d must carry a peak price", hour)
			assert.Equal(t, 540.0, *slot.PriceOverride, "hour %d", hour)
		} else {
			assert.Nil(t, slot.PriceOverride, "hour %d must fall back to court price", hour)
		}
	}
}

func TestGenerateSimpleCandidates_MultipleDays(t *testing.T) {
	court := testCourt()
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	candidates, err := generateSimpleCandidates(court, start, end, domain.DefaultSlotDurationMinutes)
	require.NoError(t, err)

	assert.Len(t, candidates, 3*17)
	assert.Equal(t, start, candidates[0].SlotDate)
	assert.Equal(t, end, candidates[len(candidates)-1].SlotDate)
}

func TestGenerateSimpleCandidates_TailSlotDropped(t *testing.T) {
	court := testCourt()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// 90-минутные слоты: стартуют каждый час, но хвост за 23:00 не влезает
	candidates, err := generateSimpleCandidates(court, date, date, 90)
	require.NoError(t, err)

	for _, slot := range candidates {
		assert.False(t, slot.EndTime.IsAfter(types.TimeString("23:00")),
			"slot %s-%s ends after closing", slot.StartTime, slot.EndTime)
	}

	last := candidates[len(candidates)-1]
	assert.Equal(t, types.TimeString("21:00"), last.StartTime)
	assert.Equal(t, types.TimeString("22:30"), last.EndTime)
}

func TestGenerateAdvancedCandidates_WeekdayFilter(t *testing.T) {
	court := testCourt()
	// 2026-09-07 понедельник .. 2026-09-13 воскресенье
	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	spec := &AdvancedSpec{
		Weekdays:            []time.Weekday{time.Monday, time.Wednesday},
		StartTime:           types.TimeString("10:00"),
		EndTime:             types.TimeString("12:00"),
		SlotDurationMinutes: 60,
	}

	candidates, err := generateAdvancedCandidates(court, start, end, spec)
	require.NoError(t, err)

	// 2 дня по 2 слота
	require.Len(t, candidates, 4)
	for _, slot := range candidates {
		wd := slot.SlotDate.Weekday()
		assert.True(t, wd == time.Monday || wd == time.Wednesday)
		assert.Nil(t, slot.PriceOverride)
	}
}

func TestGenerateAdvancedCandidates_CustomPricing(t *testing.T) {
	court := testCourt()
	// Пятница и суббота
	start := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	spec := &AdvancedSpec{
		Weekdays:            []time.Weekday{time.Friday, time.Saturday},
		StartTime:           types.TimeString("10:00"),
		EndTime:             types.TimeString("11:00"),
		SlotDurationMinutes: 60,
		CustomPricing:       true,
		WeekdayPrice:        400,
		WeekendPrice:        600,
	}

	candidates, err := generateAdvancedCandidates(court, start, end, spec)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	require.NotNil(t, candidates[0].PriceOverride)
	assert.Equal(t, 400.0, *candidates[0].PriceOverride)
	require.NotNil(t, candidates[1].PriceOverride)
	assert.Equal(t, 600.0, *candidates[1].PriceOverride)
}

func TestGenerateAdvancedCandidates_PartialTailDropped(t *testing.T) {
	court := testCourt()
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	spec := &AdvancedSpec{
		Weekdays:            []time.Weekday{time.Monday},
		StartTime:           types.TimeString("10:00"),
		EndTime:             types.TimeString("11:30"),
		SlotDurationMinutes: 60,
	}

	candidates, err := generateAdvancedCandidates(court, date, date, spec)
	require.NoError(t, err)

	// 10:00-11:00 влезает, 11:00-12:00 выходит за окно
	require.Len(t, candidates, 1)
	assert.Equal(t, types.TimeString("10:00"), candidates[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), candidates[0].EndTime)
}

func TestFilterAgainstExisting(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	makeSlot := func(start, end string) *domain.TimeSlot {
		return &domain.TimeSlot{
			CourtID:   1,
			SlotDate:  date,
			StartTime: types.TimeString(start),
			EndTime:   types.TimeString(end),
		}
	}

	candidates := []*domain.TimeSlot{
		makeSlot("09:00", "10:00"),
		makeSlot("10:00", "11:00"),
		makeSlot("11:00", "12:00"),
	}

	// Существующий слот 10:30-11:30 пересекает двух кандидатов
	existing := []*domain.TimeSlot{makeSlot("10:30", "11:30")}

	fresh := filterAgainstExisting(candidates, existing)

	require.Len(t, fresh, 1)
	assert.Equal(t, types.TimeString("09:00"), fresh[0].StartTime)
}

func TestFilterAgainstExisting_AdjacentKept(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	candidate := &domain.TimeSlot{
		CourtID: 1, SlotDate: date,
		StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:00"),
	}
	existing := &domain.TimeSlot{
		CourtID: 1, SlotDate: date,
		StartTime: types.TimeString("11:00"), EndTime: types.TimeString("12:00"),
	}

	fresh := filterAgainstExisting([]*domain.TimeSlot{candidate}, []*domain.TimeSlot{existing})

	// Соприкасающиеся интервалы не считаются пересечением
	assert.Len(t, fresh, 1)
}

func TestDropInternalOverlaps(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	makeSlot := func(start, end string) *domain.TimeSlot {
		return &domain.TimeSlot{
			CourtID:   1,
			SlotDate:  date,
			StartTime: types.TimeString(start),
			EndTime:   types.TimeString(end),
		}
	}

	candidates := []*domain.TimeSlot{
		makeSlot("09:00", "10:30"),
		makeSlot("10:00", "11:30"), // пересекает предыдущий
		makeSlot("10:30", "12:00"),
	}

	result := dropInternalOverlaps(candidates)

	require.Len(t, result, 2)
	assert.Equal(t, types.TimeString("09:00"), result[0].StartTime)
	assert.Equal(t, types.TimeString("10:30"), result[1].StartTime)
}

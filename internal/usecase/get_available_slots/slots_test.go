package get_available_slots

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
		Sport:        domain.SportTennis,
		PricePerHour: 450,
		OpenHour:     6,
		CloseHour:    23,
		Active:       true,
	}
}

func hourSlot(id int64, hour int, override *float64) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:            id,
		CourtID:       1,
		SlotDate:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:     types.FromHour(hour),
		EndTime:       types.FromHour(hour + 1),
		PriceOverride: override,
	}
}

func TestBuildDaySchedule_BookedSlotUnavailable(t *testing.T) {
	court := testCourt()

	slots := make([]*domain.TimeSlot, 0, 17)
	for hour := 6; hour < 23; hour++ {
		slots = append(slots, hourSlot(int64(hour), hour, nil))
	}

	// Бронь на слот 10:00
	bookings := []*domain.Booking{{
		ID:         1,
		TimeSlotID: 10,
		CourtID:    1,
		UserID:     42,
		Status:     domain.StatusConfirmed,
	}}

	result := buildDaySchedule(court, slots, bookings)
	require.Len(t, result, 17)

	available := 0
	for _, s := range result {
		if s.Available {
			available++
		} else {
			assert.Equal(t, types.TimeString("10:00"), s.StartTime)
		}
	}
	assert.Equal(t, 16, available)
}

func TestBuildDaySchedule_MaintenanceBlocked(t *testing.T) {
	court := testCourt()
	slot := hourSlot(1, 10, nil)
	slot.MaintenanceBlocked = true

	result := buildDaySchedule(court, []*domain.TimeSlot{slot}, nil)

	for _, s := range result {
		if s.StartTime == types.TimeString("10:00") {
			assert.False(t, s.Available)
			assert.True(t, s.MaintenanceBlocked)
			return
		}
	}
	t.Fatal("10:00 slot not found in schedule")
}

func TestBuildDaySchedule_PriceFallbackAndOverride(t *testing.T) {
	court := testCourt()
	override := 540.0

	slots := []*domain.TimeSlot{
		hourSlot(1, 6, &override),
		hourSlot(2, 10, nil),
	}

	result := buildDaySchedule(court, slots, nil)

	for _, s := range result {
		switch s.StartTime {
		case types.TimeString("06:00"):
			assert.Equal(t, 540.0, s.Price)
		case types.TimeString("10:00"):
			assert.Equal(t, 450.0, s.Price)
		}
	}
}

func TestBuildDaySchedule_UnmaterializedHoursFallback(t *testing.T) {
	court := testCourt()

	// Материализован только час 10:00
	slots := []*domain.TimeSlot{hourSlot(1, 10, nil)}

	result := buildDaySchedule(court, slots, nil)

	// 17 рабочих часов: один материализованный + 16 виртуальных
	require.Len(t, result, 17)

	for _, s := range result {
		if s.StartTime == types.TimeString("10:00") {
			require.NotNil(t, s.ID)
			continue
		}
		assert.Nil(t, s.ID)
		assert.True(t, s.Available)
		assert.Equal(t, court.PricePerHour, s.Price)
	}

	// Результат упорядочен по времени начала
	for i := 1; i < len(result); i++ {
		assert.True(t, result[i-1].StartTime.IsBefore(result[i].StartTime))
	}
}

func TestBuildDaySchedule_InactiveCourtFallbackUnavailable(t *testing.T) {
	court := testCourt()
	court.Active = false

	result := buildDaySchedule(court, nil, nil)

	require.Len(t, result, 17)
	for _, s := range result {
		assert.False(t, s.Available)
	}
}

func TestBuildDaySchedule_NonHourSlotCoversHours(t *testing.T) {
	court := testCourt()

	// Слот 10:30-12:30 покрывает часы 10, 11 и 12
	slot := &domain.TimeSlot{
		ID:        1,
		CourtID:   1,
		SlotDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:30"),
		EndTime:   types.TimeString("12:30"),
	}

	result := buildDaySchedule(court, []*domain.TimeSlot{slot}, nil)

	for _, s := range result {
		if s.ID == nil {
			wholeHours := map[types.TimeString]bool{"10:00": true, "11:00": true, "12:00": true}
			assert.False(t, wholeHours[s.StartTime],
				"hour %s is covered by the materialized slot", s.StartTime)
		}
	}

	// 17 часов минус 3 покрытых плюс сам слот
	assert.Len(t, result, 15)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

func makeDaySlots(courtID int64, startHour, endHour int) []*TimeSlot {
	date := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	slots := make([]*TimeSlot, 0, endHour-startHour)
	for h := startHour; h < endHour; h++ {
		slots = append(slots, &TimeSlot{
			ID:        int64(h),
			CourtID:   courtID,
			SlotDate:  date,
			StartTime: types.FromHour(h),
			EndTime:   types.FromHour(h + 1),
		})
	}
	return slots
}

func TestSelectConsecutiveWindow_Success(t *testing.T) {
	slots := makeDaySlots(1, 9, 13)

	selection, ok := SelectConsecutiveWindow(slots, nil, "10:00", 2, 450)

	require.True(t, ok)
	assert.Equal(t, int64(1), selection.CourtID)
	assert.Equal(t, []int64{10, 11}, selection.SlotIDs)
	assert.Equal(t, 900.0, selection.TotalPrice)
}

func TestSelectConsecutiveWindow_PriceOverrideCounted(t *testing.T) {
	slots := makeDaySlots(1, 9, 12)
	slots[1].PriceOverride = ptr.Ptr(600.0)

	selection, ok := SelectConsecutiveWindow(slots, nil, "09:00", 3, 450)

	require.True(t, ok)
	assert.Equal(t, 450.0+600.0+450.0, selection.TotalPrice)
}

func TestSelectConsecutiveWindow_BookedSlotRejectsOrigin(t *testing.T) {
	slots := makeDaySlots(1, 9, 12)
	bookings := []*Booking{
		{TimeSlotID: 10, Status: StatusConfirmed},
	}

	// 09:00 доступен, но 10:00 занят - окно из 2 часов недоступно целиком
	selection, ok := SelectConsecutiveWindow(slots, bookings, "09:00", 2, 450)

	assert.False(t, ok)
	assert.Nil(t, selection)
}

func TestSelectConsecutiveWindow_CancelledBookingDoesNotBlock(t *testing.T) {
	slots := makeDaySlots(1, 9, 12)
	bookings := []*Booking{
		{TimeSlotID: 10, Status: StatusCancelled},
	}

	_, ok := SelectConsecutiveWindow(slots, bookings, "09:00", 2, 450)

	assert.True(t, ok)
}

func TestSelectConsecutiveWindow_MaintenanceRejects(t *testing.T) {
	slots := makeDaySlots(1, 9, 12)
	slots[2].MaintenanceBlocked = true

	_, ok := SelectConsecutiveWindow(slots, nil, "10:00", 2, 450)

	assert.False(t, ok)
}

func TestSelectConsecutiveWindow_GapRejects(t *testing.T) {
	slots := makeDaySlots(1, 9, 12)
	// Убираем слот 10:00-11:00 - между 09:00 и 11:00 разрыв
	slots = append(slots[:1], slots[2:]...)

	_, ok := SelectConsecutiveWindow(slots, nil, "09:00", 2, 450)

	assert.False(t, ok)
}

func TestSelectConsecutiveWindow_NotEnoughSlots(t *testing.T) {
	slots := makeDaySlots(1, 9, 11)

	_, ok := SelectConsecutiveWindow(slots, nil, "10:00", 2, 450)

	assert.False(t, ok)
}

func TestSelectConsecutiveWindow_UnknownOrigin(t *testing.T) {
	slots := makeDaySlots(1, 9, 11)

	_, ok := SelectConsecutiveWindow(slots, nil, "14:00", 1, 450)

	assert.False(t, ok)
}

func TestSelectConsecutiveWindow_ZeroCount(t *testing.T) {
	slots := makeDaySlots(1, 9, 11)

	_, ok := SelectConsecutiveWindow(slots, nil, "09:00", 0, 450)

	assert.False(t, ok)
}

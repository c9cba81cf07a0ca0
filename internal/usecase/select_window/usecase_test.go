package select_window

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueauth"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCourtRepo struct {
	courts []*domain.Court
}

func (f *fakeCourtRepo) GetByFacility(_ context.Context, _ int64, _ bool) ([]*domain.Court, error) {
	return f.courts, nil
}

type fakeSlotRepo struct {
	byCourt map[int64][]*domain.TimeSlot
}

func (f *fakeSlotRepo) GetByCourtAndDate(_ context.Context, courtID int64, _ time.Time) ([]*domain.TimeSlot, error) {
	return f.byCourt[courtID], nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetConfirmedBySlotIDs(_ context.Context, slotIDs []int64) ([]*domain.Booking, error) {
	ids := make(map[int64]bool, len(slotIDs))
	for _, id := range slotIDs {
		ids[id] = true
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if ids[b.TimeSlotID] {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeVenueAuth struct {
	err error
}

func (f *fakeVenueAuth) GetFacility(_ context.Context, facilityID int64) (*venueauth.Facility, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &venueauth.Facility{ID: facilityID, Name: "Арена", Active: true}, nil
}

func makeCourt(id int64, price float64) *domain.Court {
	return &domain.Court{
		ID:           id,
		FacilityID:   10,
		Name:         "Корт",
		Sport:        domain.SportTennis,
		PricePerHour: price,
		OpenHour:     6,
		CloseHour:    23,
		Active:       true,
	}
}

func makeHourSlots(courtID, firstID int64, startHour, endHour int) []*domain.TimeSlot {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	slots := make([]*domain.TimeSlot, 0, endHour-startHour)
	id := firstID
	for hour := startHour; hour < endHour; hour++ {
		slots = append(slots, &domain.TimeSlot{
			ID:        id,
			CourtID:   courtID,
			SlotDate:  date,
			StartTime: types.FromHour(hour),
			EndTime:   types.FromHour(hour + 1),
		})
		id++
	}
	return slots
}

func newTestUseCase(courts *fakeCourtRepo, slots *fakeSlotRepo, bookings *fakeBookingRepo) *UseCase {
	return NewUseCase(courts, slots, bookings, &fakeVenueAuth{}, nopLogger{})
}

func TestExecute_FirstCourtWins(t *testing.T) {
	courts := &fakeCourtRepo{courts: []*domain.Court{makeCourt(1, 450), makeCourt(2, 400)}}
	slots := &fakeSlotRepo{byCourt: map[int64][]*domain.TimeSlot{
		1: makeHourSlots(1, 100, 6, 23),
		2: makeHourSlots(2, 200, 6, 23),
	}}
	uc := newTestUseCase(courts, slots, &fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 10,
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
		Hours:      2,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, int64(1), resp.CourtID)
	assert.Equal(t, []int64{104, 105}, resp.SlotIDs)
	assert.Equal(t, 900.0, resp.TotalPrice)
}

func TestExecute_FallsOverToNextCourt(t *testing.T) {
	courts := &fakeCourtRepo{courts: []*domain.Court{makeCourt(1, 450), makeCourt(2, 400)}}
	slots := &fakeSlotRepo{byCourt: map[int64][]*domain.TimeSlot{
		1: makeHourSlots(1, 100, 6, 23),
		2: makeHourSlots(2, 200, 6, 23),
	}}
	// На первом корте занят слот 11:00 (id=105)
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
		ID: 1, TimeSlotID: 105, CourtID: 1, UserID: 42, Status: domain.StatusConfirmed,
	}}}
	uc := newTestUseCase(courts, slots, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 10,
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
		Hours:      2,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, int64(2), resp.CourtID)
	assert.Equal(t, []int64{204, 205}, resp.SlotIDs)
	assert.Equal(t, 800.0, resp.TotalPrice)
}

func TestExecute_NoWindowAnywhere(t *testing.T) {
	courts := &fakeCourtRepo{courts: []*domain.Court{makeCourt(1, 450)}}
	slots := &fakeSlotRepo{byCourt: map[int64][]*domain.TimeSlot{
		1: makeHourSlots(1, 100, 6, 23),
	}}
	// Слот 10:00 занят - окно 09:00 на два часа невозможно
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{{
		ID: 1, TimeSlotID: 104, CourtID: 1, UserID: 42, Status: domain.StatusConfirmed,
	}}}
	uc := newTestUseCase(courts, slots, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		FacilityID: 10,
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("09:00"),
		Hours:      2,
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Empty(t, resp.SlotIDs)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, resp.TotalPrice)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeCourtRepo{},
		&fakeSlotRepo{},
		&fakeBookingRepo{},
		&fakeVenueAuth{err: venueauth.ErrFacilityNotFound},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		FacilityID: 99,
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
		Hours:      2,
	})

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_HoursOutOfRange(t *testing.T) {
	uc := newTestUseCase(&fakeCourtRepo{}, &fakeSlotRepo{}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		FacilityID: 10,
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
		Hours:      domain.MaxWindowHours + 1,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

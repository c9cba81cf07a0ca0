package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCourtRepo struct {
	court *domain.Court
	err   error
}

func (f *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, f.err
}

type fakeSlotRepo struct {
	existing []*domain.TimeSlot

	inserted []*domain.TimeSlot
}

func (f *fakeSlotRepo) GetByCourtAndRange(_ context.Context, _ domain.SlotRangeFilter) ([]*domain.TimeSlot, error) {
	return f.existing, nil
}

func (f *fakeSlotRepo) CreateBatchSkipDuplicates(_ context.Context, slots []*domain.TimeSlot) (int, error) {
	f.inserted = append(f.inserted, slots...)
	return len(slots), nil
}

type fakeVenueAuth struct {
	allowed bool
	err     error
}

func (f *fakeVenueAuth) CanManage(_ context.Context, _, _ int64) (bool, error) {
	return f.allowed, f.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestUseCase(court *domain.Court, slots *fakeSlotRepo, allowed bool) *UseCase {
	return NewUseCase(
		&fakeCourtRepo{court: court},
		slots,
		&fakeVenueAuth{allowed: allowed},
		passthroughTxManager{},
		nopLogger{},
	)
}

func TestExecute_SimpleGeneration(t *testing.T) {
	court := testCourt()
	slots := &fakeSlotRepo{}
	uc := newTestUseCase(court, slots, true)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   court.ID,
		StartDate: date,
		EndDate:   date,
	})

	require.NoError(t, err)
	assert.Equal(t, 17, resp.Created)
	assert.Equal(t, 0, resp.Skipped)
	assert.Len(t, slots.inserted, 17)
}

func TestExecute_SkipsOverlappingCandidates(t *testing.T) {
	court := testCourt()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Уже материализован слот 10:00-11:00
	slots := &fakeSlotRepo{
		existing: []*domain.TimeSlot{{
			ID:        1,
			CourtID:   court.ID,
			SlotDate:  date,
			StartTime: types.TimeString("10:00"),
			EndTime:   types.TimeString("11:00"),
		}},
	}
	uc := newTestUseCase(court, slots, true)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   court.ID,
		StartDate: date,
		EndDate:   date,
	})

	require.NoError(t, err)
	assert.Equal(t, 16, resp.Created)
	assert.Equal(t, 1, resp.Skipped)

	for _, slot := range slots.inserted {
		assert.NotEqual(t, types.TimeString("10:00"), slot.StartTime)
	}
}

func TestExecute_NoNewSlots(t *testing.T) {
	court := testCourt()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	existing, err := generateSimpleCandidates(court, date, date, domain.DefaultSlotDurationMinutes)
	require.NoError(t, err)

	// Весь диапазон уже сгенерирован: повторный запуск обязан вернуть ошибку, а не no-op
	slots := &fakeSlotRepo{existing: existing}
	uc := newTestUseCase(court, slots, true)

	_, err = uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   court.ID,
		StartDate: date,
		EndDate:   date,
	})

	assert.ErrorIs(t, err, ErrNoNewSlots)
	assert.Empty(t, slots.inserted)
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeCourtRepo{err: courtRepo.ErrCourtNotFound},
		&fakeSlotRepo{},
		&fakeVenueAuth{allowed: true},
		passthroughTxManager{},
		nopLogger{},
	)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   99,
		StartDate: date,
		EndDate:   date,
	})

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_CourtInactive(t *testing.T) {
	court := testCourt()
	court.Active = false
	uc := newTestUseCase(court, &fakeSlotRepo{}, true)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   court.ID,
		StartDate: date,
		EndDate:   date,
	})

	assert.ErrorIs(t, err, ErrCourtInactive)
}

func TestExecute_AccessDenied(t *testing.T) {
	court := testCourt()
	uc := newTestUseCase(court, &fakeSlotRepo{}, false)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   court.ID,
		StartDate: date,
		EndDate:   date,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_ValidationErrors(t *testing.T) {
	court := testCourt()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "end before start",
			req: &Request{
				UserID: 42, CourtID: 1,
				StartDate: date, EndDate: date.AddDate(0, 0, -1),
			},
		},
		{
			name: "range too long",
			req: &Request{
				UserID: 42, CourtID: 1,
				StartDate: date, EndDate: date.AddDate(0, 0, domain.MaxGenerationRangeDays+1),
			},
		},
		{
			name: "duration too short",
			req: &Request{
				UserID: 42, CourtID: 1,
				StartDate: date, EndDate: date,
				SlotDurationMinutes: 10,
			},
		},
		{
			name: "advanced without weekdays",
			req: &Request{
				UserID: 42, CourtID: 1,
				StartDate: date, EndDate: date,
				Advanced: &AdvancedSpec{
					StartTime:           types.TimeString("10:00"),
					EndTime:             types.TimeString("12:00"),
					SlotDurationMinutes: 60,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(court, &fakeSlotRepo{}, true)
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_AdvancedWindowOutsideOperatingHours(t *testing.T) {
	court := testCourt()
	uc := newTestUseCase(court, &fakeSlotRepo{}, true)

	// Понедельник
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		CourtID:   court.ID,
		StartDate: date,
		EndDate:   date,
		Advanced: &AdvancedSpec{
			Weekdays:            []time.Weekday{time.Monday},
			StartTime:           types.TimeString("05:00"),
			EndTime:             types.TimeString("08:00"),
			SlotDurationMinutes: 60,
		},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

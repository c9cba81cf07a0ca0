package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CourtBookingService/pkg/ptr"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type fakeBookingRepo struct {
	byID      map[int64]*domain.BookingWithSlot
	byUser    []*domain.BookingWithSlot
	cancelled map[int64]string
	cancelErr error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.BookingWithSlot, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.BookingWithSlot, error) {
	return f.byUser, nil
}

func (f *fakeBookingRepo) GetByFacilityWithFilter(_ context.Context, _ domain.FacilityBookingsFilter) ([]*domain.BookingWithSlot, error) {
	return f.byUser, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	if f.cancelled == nil {
		f.cancelled = make(map[int64]string)
	}
	f.cancelled[id] = reason
	return nil
}

type fakeCourtRepo struct {
	court *domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, nil
}

type fakeVenueAuth struct {
	allowed bool
}

func (f *fakeVenueAuth) CanManage(_ context.Context, _, _ int64) (bool, error) {
	return f.allowed, nil
}

func makeBooking(id, userID int64, status domain.BookingStatus, date time.Time, startHour int) *domain.BookingWithSlot {
	return &domain.BookingWithSlot{
		Booking: domain.Booking{
			ID:         id,
			TimeSlotID: id + 100,
			CourtID:    1,
			UserID:     userID,
			Status:     status,
			TotalPrice: 450,
			PaymentRef: "pay",
		},
		SlotDate:  date,
		StartTime: types.FromHour(startHour),
		EndTime:   types.FromHour(startHour + 1),
	}
}

func newTestService(repo *fakeBookingRepo, allowed bool, now time.Time) *Service {
	svc := NewService(
		repo,
		&fakeCourtRepo{court: &domain.Court{ID: 1, FacilityID: 10, Active: true}},
		&fakeVenueAuth{allowed: allowed},
		nopLogger{},
	)
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestGetByID_OwnerSeesOwnBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{byID: map[int64]*domain.BookingWithSlot{
		1: makeBooking(1, 42, domain.StatusConfirmed, date, 10),
	}}
	svc := newTestService(repo, false, now)

	resp, err := svc.GetByID(context.Background(), 1, 42)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{byID: map[int64]*domain.BookingWithSlot{
		1: makeBooking(1, 42, domain.StatusConfirmed, date, 10),
	}}
	svc := newTestService(repo, false, now)

	_, err := svc.GetByID(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_ManagerAllowed(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{byID: map[int64]*domain.BookingWithSlot{
		1: makeBooking(1, 42, domain.StatusConfirmed, date, 10),
	}}
	svc := newTestService(repo, true, now)

	resp, err := svc.GetByID(context.Background(), 1, 99)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestGetByID_PastSlotReportedCompleted(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Слот 10:00-11:00 уже прошёл
	repo := &fakeBookingRepo{byID: map[int64]*domain.BookingWithSlot{
		1: makeBooking(1, 42, domain.StatusConfirmed, date, 10),
	}}
	svc := newTestService(repo, false, now)

	resp, err := svc.GetByID(context.Background(), 1, 42)

	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestGetUserBookings_StatusFilterUsesEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{byUser: []*domain.BookingWithSlot{
		makeBooking(1, 42, domain.StatusConfirmed, date, 10), // прошёл - completed
		makeBooking(2, 42, domain.StatusConfirmed, date, 15), // впереди - confirmed
		makeBooking(3, 42, domain.StatusCancelled, date, 16),
	}}
	svc := newTestService(repo, false, now)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: ptr.Ptr("completed"),
	})

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestGetFacilityBookings_RequiresManager(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{}, false, now)

	_, err := svc.GetFacilityBookings(context.Background(), &models.GetFacilityBookingsRequest{
		UserID:     99,
		FacilityID: 10,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_OwnerBeforeSlotStart(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{byID: map[int64]*domain.BookingWithSlot{
		1: makeBooking(1, 42, domain.StatusConfirmed, date, 10),
	}}
	svc := newTestService(repo, false, now)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             42,
		CancellationReason: "передумал",
	})

	require.NoError(t, err)
	assert.Equal(t, "передумал", repo.cancelled[1])
}

func TestCancel_OwnerAfterSlotStartRejected(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{byID: map[int64]*domain.BookingWithSlot{
		1: makeBooking(1, 42, domain.StatusConfirmed, date, 10),
	}}
	svc := newTestService(repo, false, now)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_ManagerAfterSlotStartAllowed(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{byID: map[int64]*domain.BookingWithSlot{
		1: makeBooking(1, 42, domain.StatusConfirmed, date, 10),
	}}
	svc := newTestService(repo, true, now)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             99,
		CancellationReason: "корт закрыт",
	})

	require.NoError(t, err)
	assert.Equal(t, "корт закрыт", repo.cancelled[1])
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{byID: map[int64]*domain.BookingWithSlot{
		1: makeBooking(1, 42, domain.StatusCancelled, date, 10),
	}}
	svc := newTestService(repo, false, now)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_ConcurrentCancelLoses(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// Чтение видит confirmed, но атомарный update не находит строку -
	// конкурентная отмена успела первой
	repo := &fakeBookingRepo{
		byID: map[int64]*domain.BookingWithSlot{
			1: makeBooking(1, 42, domain.StatusConfirmed, date, 10),
		},
		cancelErr: bookingRepo.ErrBookingNotFound,
	}
	svc := newTestService(repo, false, now)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{}, false, now)

	err := svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{UserID: 42})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

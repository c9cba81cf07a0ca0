package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/payments"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	byPaymentRef []*domain.BookingWithSlot
	confirmed    []*domain.Booking
	createErr    error

	created []*domain.Booking
	nextID  int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	out := *b
	out.ID = f.nextID
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeBookingRepo) GetByPaymentRef(_ context.Context, _ string) ([]*domain.BookingWithSlot, error) {
	return f.byPaymentRef, nil
}

func (f *fakeBookingRepo) GetConfirmedBySlotIDs(_ context.Context, _ []int64) ([]*domain.Booking, error) {
	return f.confirmed, nil
}

type fakeSlotRepo struct {
	slots map[int64]*domain.TimeSlot
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	slot, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return slot, nil
}

type fakePayments struct {
	err error
}

func (f *fakePayments) VerifySignature(_, _, _ string) error {
	return f.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testSlots() map[int64]*domain.TimeSlot {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return map[int64]*domain.TimeSlot{
		104: {ID: 104, CourtID: 1, SlotDate: date, StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:00")},
		105: {ID: 105, CourtID: 1, SlotDate: date, StartTime: types.TimeString("11:00"), EndTime: types.TimeString("12:00")},
	}
}

func validRequest() *Request {
	return &Request{
		OrderRef:   "order_123",
		PaymentRef: "pay_456",
		Signature:  "sig",
		UserID:     42,
		CourtID:    1,
		SlotIDs:    []int64{104, 105},
		TotalPrice: 900,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, verifyErr error) *UseCase {
	return NewUseCase(
		bookings,
		&fakeSlotRepo{slots: testSlots()},
		&fakePayments{err: verifyErr},
		passthroughTxManager{},
		nopLogger{},
	)
}

func TestExecute_WritesBookingPerSlot(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.AlreadyProcessed)
	require.Len(t, resp.Bookings, 2)
	require.Len(t, bookings.created, 2)

	var total float64
	for i, b := range bookings.created {
		assert.Equal(t, domain.StatusConfirmed, b.Status)
		assert.Equal(t, "pay_456", b.PaymentRef)
		assert.Equal(t, "order_123", b.PaymentOrderRef)
		assert.Equal(t, int64(42), b.UserID)
		total += b.TotalPrice

		assert.Equal(t, b.TimeSlotID, resp.Bookings[i].TimeSlotID)
		assert.False(t, resp.Bookings[i].SlotDate.IsZero())
	}
	assert.Equal(t, 900.0, total, "shares must add up to the captured price")
}

func TestExecute_ConflictAbortsWholeWrite(t *testing.T) {
	// На слот 105 уже есть подтвержденная бронь
	bookings := &fakeBookingRepo{confirmed: []*domain.Booking{{
		ID: 7, TimeSlotID: 105, CourtID: 1, UserID: 99, Status: domain.StatusConfirmed,
	}}}
	uc := newTestUseCase(bookings, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, bookings.created, "conflict must abort the whole write")
}

func TestExecute_DuplicateCallbackReturnsExisting(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	existing := []*domain.BookingWithSlot{{
		Booking: domain.Booking{
			ID: 1, TimeSlotID: 104, CourtID: 1, UserID: 42,
			Status: domain.StatusConfirmed, TotalPrice: 450, PaymentRef: "pay_456",
		},
		SlotDate:  date,
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
	}}

	bookings := &fakeBookingRepo{byPaymentRef: existing}
	uc := newTestUseCase(bookings, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.AlreadyProcessed)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
	assert.Empty(t, bookings.created, "duplicate delivery must not create new bookings")
}

func TestExecute_ConcurrentDuplicateLosesToUniqueKey(t *testing.T) {
	// Предварительная проверка прошла, но вставка упала на уникальном ключе
	// (payment_ref, time_slot_id) - конкурентная доставка успела первой
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrDuplicatePayment}
	uc := newTestUseCase(bookings, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, resp.AlreadyProcessed)
}

func TestExecute_ConcurrentBookingLosesToPartialIndex(t *testing.T) {
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrSlotAlreadyBooked}
	uc := newTestUseCase(bookings, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_SignatureMismatch(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, payments.ErrSignatureMismatch)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSignatureMismatch)
	assert.Empty(t, bookings.created)
}

func TestExecute_UnknownSlot(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, nil)

	req := validRequest()
	req.SlotIDs = []int64{104, 999}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_DuplicateSlotIDsRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, nil)

	req := validRequest()
	req.SlotIDs = []int64{104, 104}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSplitPrice(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		count int
		want  []float64
	}{
		{name: "even split", total: 900, count: 2, want: []float64{450, 450}},
		{name: "single slot", total: 450, count: 1, want: []float64{450}},
		{name: "remainder goes to last share", total: 1000, count: 3, want: []float64{333.33, 333.33, 333.34}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitPrice(tt.total, tt.count)
			assert.Equal(t, tt.want, got)

			var sum float64
			for _, s := range got {
				sum += s
			}
			assert.InDelta(t, tt.total, sum, 0.001)
		})
	}
}

package initiate_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/payments"
	"github.com/m04kA/SMC-CourtBookingService/internal/usecase/select_window"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSelector struct {
	resp *select_window.Response
	err  error
}

func (f *fakeSelector) Execute(_ context.Context, _ *select_window.Request) (*select_window.Response, error) {
	return f.resp, f.err
}

type fakePayments struct {
	lastReq *payments.CreateOrderRequest
	err     error
}

func (f *fakePayments) CreateOrder(_ context.Context, req *payments.CreateOrderRequest) (*payments.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastReq = req
	return &payments.Order{
		ID:       "order_123",
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   "created",
	}, nil
}

func validRequest() *Request {
	return &Request{
		UserID:     42,
		FacilityID: 10,
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
		Hours:      2,
	}
}

func TestExecute_CreatesOrderForWindow(t *testing.T) {
	selector := &fakeSelector{resp: &select_window.Response{
		Available:  true,
		CourtID:    1,
		CourtName:  "Корт 1",
		SlotIDs:    []int64{104, 105},
		TotalPrice: 900,
	}}
	gateway := &fakePayments{}
	uc := NewUseCase(selector, gateway, "INR", nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "order_123", resp.OrderRef)
	assert.Equal(t, int64(90000), resp.Amount)
	assert.Equal(t, "INR", resp.Currency)
	assert.Equal(t, []int64{104, 105}, resp.SlotIDs)
	assert.Equal(t, 900.0, resp.TotalPrice)

	require.NotNil(t, gateway.lastReq)
	assert.Equal(t, "42", gateway.lastReq.Notes["user_id"])
	assert.Equal(t, "1", gateway.lastReq.Notes["court_id"])
	assert.Equal(t, "104,105", gateway.lastReq.Notes["slot_ids"])
	assert.Equal(t, "900.00", gateway.lastReq.Notes["total_price"])
	assert.Equal(t, "2026-09-01", gateway.lastReq.Notes["slot_date"])
}

func TestExecute_WindowUnavailable(t *testing.T) {
	selector := &fakeSelector{resp: &select_window.Response{Available: false}}
	gateway := &fakePayments{}
	uc := NewUseCase(selector, gateway, "INR", nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrWindowUnavailable)
	assert.Nil(t, gateway.lastReq, "no order must be created for an unavailable window")
}

func TestExecute_FacilityNotFound(t *testing.T) {
	selector := &fakeSelector{err: select_window.ErrFacilityNotFound}
	uc := NewUseCase(selector, &fakePayments{}, "INR", nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_GatewayFailure(t *testing.T) {
	selector := &fakeSelector{resp: &select_window.Response{
		Available:  true,
		CourtID:    1,
		SlotIDs:    []int64{104},
		TotalPrice: 450,
	}}
	uc := NewUseCase(selector, &fakePayments{err: payments.ErrOrderCreateFailed}, "INR", nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeSelector{}, &fakePayments{}, "INR", nopLogger{})

	req := validRequest()
	req.Hours = 0

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

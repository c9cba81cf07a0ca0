package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	confirmBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidNotes       = "некорректные параметры бронирования в notes заказа"
	msgSignatureMismatch  = "некорректная подпись платежа"
	msgSlotNotFound       = "слот не найден"
	msgSlotConflict       = "один из слотов уже забронирован"
	msgInvalidData        = "некорректные данные подтверждения"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/confirm - callback платёжного шлюза
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/confirm - Failed to parse notes: order_ref=%s, error=%v", req.OrderRef, err)
		handlers.RespondBadRequest(w, msgInvalidNotes)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSignatureMismatch):
			h.logger.Warn("POST /bookings/confirm - Signature mismatch: order_ref=%s, payment_ref=%s",
				req.OrderRef, req.PaymentRef)
			handlers.RespondBadRequest(w, msgSignatureMismatch)

		case errors.Is(err, confirmBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings/confirm - Slot not found: order_ref=%s", req.OrderRef)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, confirmBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings/confirm - Slot conflict: order_ref=%s, payment_ref=%s",
				req.OrderRef, req.PaymentRef)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/confirm - Invalid input: order_ref=%s, error=%v", req.OrderRef, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /bookings/confirm - Failed to confirm booking: order_ref=%s, error=%v",
				req.OrderRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.AlreadyProcessed {
		status = http.StatusOK
	}

	h.logger.Info("POST /bookings/confirm - Payment confirmed: order_ref=%s, payment_ref=%s, bookings=%d, already_processed=%t",
		req.OrderRef, req.PaymentRef, len(result.Bookings), result.AlreadyProcessed)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}

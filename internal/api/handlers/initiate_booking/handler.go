package initiate_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	initiateBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/initiate_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgFacilityNotFound   = "площадка не найдена"
	msgWindowUnavailable  = "запрошенное окно недоступно"
	msgInvalidData        = "некорректные параметры бронирования"
)

type Handler struct {
	useCase InitiateBookingUseCase
	logger  Logger
}

func NewHandler(useCase InitiateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/initiate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/initiate - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req InitiateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/initiate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/initiate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, initiateBooking.ErrFacilityNotFound):
			h.logger.Warn("POST /bookings/initiate - Facility not found: facility_id=%d", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, initiateBooking.ErrWindowUnavailable):
			h.logger.Warn("POST /bookings/initiate - Window unavailable: facility_id=%d, date=%s, start=%s, hours=%d",
				req.FacilityID, req.Date, req.StartTime, req.Hours)
			handlers.RespondError(w, http.StatusConflict, msgWindowUnavailable)

		case errors.Is(err, initiateBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/initiate - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /bookings/initiate - Failed to initiate booking: user_id=%d, facility_id=%d, error=%v",
				userID, req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/initiate - Payment order created: order_ref=%s, user_id=%d, court_id=%d",
		result.OrderRef, userID, result.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

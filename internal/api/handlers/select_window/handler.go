package select_window

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
	selectWindow "github.com/m04kA/SMC-CourtBookingService/internal/usecase/select_window"
)

const (
	msgInvalidFacilityID = "некорректный ID площадки"
	msgInvalidParams     = "некорректные параметры, ожидаются date=YYYY-MM-DD, startTime=HH:MM, hours=N"
	msgFacilityNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase SelectWindowUseCase
	logger  Logger
}

func NewHandler(useCase SelectWindowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/window?date=YYYY-MM-DD&startTime=HH:MM&hours=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/window - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(facilityID, query.Get("date"), query.Get("startTime"), query.Get("hours"))
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/window - Invalid query params: facility_id=%d, error=%v", facilityID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectWindow.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/window - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, selectWindow.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/window - Invalid input: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /facilities/{id}/window - Failed to select window: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/window - Window selection done: facility_id=%d, available=%t",
		facilityID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package list_courts

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
)

const (
	msgInvalidFacilityID = "некорректный ID площадки"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/courts?includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/courts - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	// Публичная ручка отдаёт только активные корты, если явно не запрошено иное
	onlyActive := r.URL.Query().Get("includeInactive") != "true"

	result, err := h.service.List(r.Context(), facilityID, onlyActive)
	if err != nil {
		h.logger.Error("GET /facilities/{id}/courts - Failed to list courts: facility_id=%d, error=%v",
			facilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{id}/courts - Courts retrieved: facility_id=%d, count=%d",
		facilityID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

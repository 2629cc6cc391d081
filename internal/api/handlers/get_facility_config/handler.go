package get_facility_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	configservice "github.com/m04kA/SMC-CourtService/internal/service/config"
)

const (
	msgInvalidFacilityID = "некорректный ID площадки"
	msgFacilityNotFound  = "площадка не найдена"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/config
// Для ненастроенной площадки возвращает дефолтную конфигурацию с isDefault=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	facilityIDStr := vars["facilityId"]
	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/config - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	result, err := h.service.Get(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, configservice.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/config - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		default:
			h.logger.Error("GET /facilities/{id}/config - Failed to get config: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/config - Config retrieved successfully: facility_id=%d, is_default=%t",
		facilityID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}

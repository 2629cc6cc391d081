package get_price_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	getPriceQuote "github.com/m04kA/SMC-CourtService/internal/usecase/get_price_quote"
)

const (
	msgInvalidFacilityID = "некорректный ID площадки"
	msgInvalidCourtID    = "некорректный ID корта"
	msgMissingDateTime   = "дата и время обязательны"
	msgInvalidDateTime   = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgFacilityNotFound  = "площадка не найдена"
	msgCourtNotFound     = "корт не найден"
)

type Handler struct {
	useCase GetPriceQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetPriceQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/price-quote
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM), courtId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем facilityId из URL
	facilityIDStr := vars["facilityId"]
	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/price-quote - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	// Извлекаем date и time из query параметров
	dateStr := r.URL.Query().Get("date")
	timeStr := r.URL.Query().Get("time")
	if dateStr == "" || timeStr == "" {
		h.logger.Warn("GET /facilities/{id}/price-quote - Missing date or time")
		handlers.RespondBadRequest(w, msgMissingDateTime)
		return
	}

	// Извлекаем опциональный courtId
	var courtID *int64
	if courtIDStr := r.URL.Query().Get("courtId"); courtIDStr != "" {
		id, err := strconv.ParseInt(courtIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/price-quote - Invalid court ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCourtID)
			return
		}
		courtID = &id
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getPriceQuote.Request{
		FacilityID: facilityID,
		Date:       dateStr,
		Time:       timeStr,
		CourtID:    courtID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getPriceQuote.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/price-quote - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getPriceQuote.ErrCourtNotFound):
			h.logger.Warn("GET /facilities/{id}/price-quote - Court not found: facility_id=%d, court_id=%v",
				facilityID, courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getPriceQuote.ErrInvalidDate),
			errors.Is(err, getPriceQuote.ErrInvalidTime),
			errors.Is(err, getPriceQuote.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/price-quote - Invalid input: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		default:
			h.logger.Error("GET /facilities/{id}/price-quote - Failed to get quote: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/price-quote - Quote retrieved successfully: facility_id=%d, price=%.2f",
		facilityID, result.Price)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

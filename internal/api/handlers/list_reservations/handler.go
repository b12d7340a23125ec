package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/reservations"
)

const (
	msgInvalidParams    = "некорректные параметры запроса"
	msgIncompletePeriod = "для фильтрации нужны обе границы периода: dateFrom и dateTo"
	msgInvalidRange     = "дата начала периода позже даты окончания"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: dateFrom, dateTo, roomId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateFromStr := r.URL.Query().Get("dateFrom")
	dateToStr := r.URL.Query().Get("dateTo")
	roomIDStr := r.URL.Query().Get("roomId")

	// Без параметров периода отдаем полный список
	if dateFromStr == "" && dateToStr == "" && roomIDStr == "" {
		result, err := h.service.List(r.Context())
		if err != nil {
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("GET /reservations - Reservations retrieved successfully: count=%d", len(result.Reservations))
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	if dateFromStr == "" || dateToStr == "" {
		h.logger.Warn("GET /reservations - Incomplete period: dateFrom=%q, dateTo=%q", dateFromStr, dateToStr)
		handlers.RespondBadRequest(w, msgIncompletePeriod)
		return
	}

	filterReq, err := ToFilterRequest(dateFromStr, dateToStr, roomIDStr)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.Filter(r.Context(), filterReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidDateRange):
			h.logger.Warn("GET /reservations - Invalid date range: dateFrom=%q, dateTo=%q", dateFromStr, dateToStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /reservations - Failed to filter reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Reservations filtered successfully: dateFrom=%q, dateTo=%q, count=%d",
		dateFromStr, dateToStr, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}

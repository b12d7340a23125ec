package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	updateReservation "github.com/m04kA/SMC-RoomBookingService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateTime      = "некорректный формат даты брони, ожидается RFC3339"
	msgReservationNotFound  = "бронирование не найдено"
	msgRoomRequired         = "комната не найдена"
	msgRoomNotAvailable     = "комната недоступна для бронирования"
	msgDateAlreadyBooked    = "комната уже забронирована на это время"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Пустой requestedBy сохранит автора исходной брони
	requestedBy, _ := middleware.GetUser(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(reservationID, requestedBy)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse reserved_at: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservation.ErrRoomRequired):
			h.logger.Warn("PUT /reservations/{id} - Room not found: reservation_id=%d, room_id=%d",
				reservationID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomRequired)

		case errors.Is(err, updateReservation.ErrRoomNotAvailable):
			h.logger.Warn("PUT /reservations/{id} - Room not available: reservation_id=%d, room_id=%d",
				reservationID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotAvailable)

		case errors.Is(err, updateReservation.ErrDateAlreadyBooked):
			h.logger.Warn("PUT /reservations/{id} - Slot already booked: reservation_id=%d, room_id=%d, reserved_at=%q",
				reservationID, req.RoomID, req.ReservedAt)
			handlers.RespondError(w, http.StatusConflict, msgDateAlreadyBooked)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d, room_id=%d",
		result.ID, result.RoomID)
	handlers.RespondJSON(w, http.StatusOK, response)
}

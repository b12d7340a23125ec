package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createReservation "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты брони, ожидается RFC3339"
	msgRoomRequired       = "комната не найдена"
	msgRoomNotAvailable   = "комната недоступна для бронирования"
	msgDateAlreadyBooked  = "комната уже забронирована на это время"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Идентификатор вызывающего берем из контекста (middleware Identity)
	requestedBy, ok := middleware.GetUser(r.Context())
	if !ok {
		requestedBy = domain.DefaultRequestedBy
	}

	useCaseReq, err := req.ToUseCaseRequest(requestedBy)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse reserved_at: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrRoomRequired):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomRequired)

		case errors.Is(err, createReservation.ErrRoomNotAvailable):
			h.logger.Warn("POST /reservations - Room not available: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotAvailable)

		case errors.Is(err, createReservation.ErrDateAlreadyBooked):
			h.logger.Warn("POST /reservations - Slot already booked: room_id=%d, reserved_at=%q",
				req.RoomID, req.ReservedAt)
			handlers.RespondError(w, http.StatusConflict, msgDateAlreadyBooked)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: room_id=%d, error=%v",
				req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, room_id=%d, requested_by=%q",
		result.ID, result.RoomID, result.RequestedBy)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

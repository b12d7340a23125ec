package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

// UseCase use case создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	roomDirectory   RoomDirectory
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomDirectory RoomDirectory,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomDirectory:   roomDirectory,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликта и вставка выполняются в сериализуемой транзакции;
// дополнительно unique constraint на (room_id, reserved_at) гарантирует,
// что две конкурентные брони на один слот не пройдут обе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: room=%d, reservedAt=%s, requestedBy=%q",
		req.RoomID, req.ReservedAt.Format(domain.DateTimeFormat), req.RequestedBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Подставляем псевдо-пользователя, если веб-слой не передал вызывающего
	requestedBy := req.RequestedBy
	if requestedBy == "" {
		requestedBy = domain.DefaultRequestedBy
	}

	var result *domain.Reservation

	// 3. Проверка комнаты, проверка слота и вставка - одна транзакция
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Комната должна существовать
		room, err := uc.roomDirectory.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
				return ErrRoomRequired
			}
			uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 3.2. Комната должна принимать бронирования
		if !room.IsBookable() {
			uc.logger.Warn("CreateReservation: room id=%d is not available", req.RoomID)
			return ErrRoomNotAvailable
		}

		// 3.3. Слот должен быть свободен
		occupied, err := uc.reservationRepo.ExistsAtSlot(txCtx, req.RoomID, req.ReservedAt, nil)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if occupied {
			uc.logger.Warn("CreateReservation: slot (room=%d, %s) already booked",
				req.RoomID, req.ReservedAt.Format(domain.DateTimeFormat))
			return ErrDateAlreadyBooked
		}

		// 3.4. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			RoomID:      req.RoomID,
			ReservedAt:  req.ReservedAt,
			RequestedBy: requestedBy,
		})
		if err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrDateAlreadyBooked):
				// Конкурентная бронь проскочила между проверкой и вставкой,
				// constraint БД её поймал
				uc.logger.Warn("CreateReservation: slot (room=%d, %s) booked concurrently",
					req.RoomID, req.ReservedAt.Format(domain.DateTimeFormat))
				return ErrDateAlreadyBooked
			case errors.Is(err, reservationRepo.ErrRoomNotFound):
				uc.logger.Warn("CreateReservation: room id=%d deleted concurrently", req.RoomID)
				return ErrRoomRequired
			default:
				uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
				return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
			}
		}

		// Имя комнаты не хранится в брони - берём его из только что
		// прочитанной записи справочника
		created.RoomName = room.Name
		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		RoomID:      result.RoomID,
		ReservedAt:  result.ReservedAt,
		RequestedBy: result.RequestedBy,
		CreatedAt:   result.CreatedAt,
		RoomName:    result.RoomName,
	}, nil
}

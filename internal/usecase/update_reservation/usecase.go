package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// UseCase use case обновления бронирования
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

// Execute выполняет use case обновления бронирования.
// Проверки те же, что при создании, но собственная запись бронирования
// исключается из проверки конфликта: правка брони на её же слот проходит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, room=%d, reservedAt=%s",
		req.ID, req.RoomID, req.ReservedAt.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 2. Все проверки и запись - одна сериализуемая транзакция
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирование должно существовать
		existing, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.2. Комната должна существовать и принимать бронирования
		room, err := uc.roomDirectory.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("UpdateReservation: room id=%d not found", req.RoomID)
				return ErrRoomRequired
			}
			uc.logger.Error("UpdateReservation: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.IsBookable() {
			uc.logger.Warn("UpdateReservation: room id=%d is not available", req.RoomID)
			return ErrRoomNotAvailable
		}

		// 2.3. Слот должен быть свободен, не считая самой правящейся брони
		occupied, err := uc.reservationRepo.ExistsAtSlot(txCtx, req.RoomID, req.ReservedAt, ptr.Ptr(req.ID))
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if occupied {
			uc.logger.Warn("UpdateReservation: slot (room=%d, %s) already booked",
				req.RoomID, req.ReservedAt.Format(domain.DateTimeFormat))
			return ErrDateAlreadyBooked
		}

		// 2.4. Сохраняем изменения; инициатор правки замещает прежнего,
		// если веб-слой его передал
		requestedBy := req.RequestedBy
		if requestedBy == "" {
			requestedBy = existing.RequestedBy
		}

		updated := &domain.Reservation{
			ID:          req.ID,
			RoomID:      req.RoomID,
			ReservedAt:  req.ReservedAt,
			RequestedBy: requestedBy,
			CreatedAt:   existing.CreatedAt,
		}

		if err := uc.reservationRepo.Update(txCtx, updated); err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrDateAlreadyBooked):
				uc.logger.Warn("UpdateReservation: slot (room=%d, %s) booked concurrently",
					req.RoomID, req.ReservedAt.Format(domain.DateTimeFormat))
				return ErrDateAlreadyBooked
			case errors.Is(err, reservationRepo.ErrRoomNotFound):
				uc.logger.Warn("UpdateReservation: room id=%d deleted concurrently", req.RoomID)
				return ErrRoomRequired
			case errors.Is(err, reservationRepo.ErrReservationNotFound):
				uc.logger.Warn("UpdateReservation: reservation id=%d deleted concurrently", req.ID)
				return ErrReservationNotFound
			default:
				uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
				return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
			}
		}

		updated.RoomName = room.Name
		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		RoomID:      result.RoomID,
		ReservedAt:  result.ReservedAt,
		RequestedBy: result.RequestedBy,
		CreatedAt:   result.CreatedAt,
		RoomName:    result.RoomName,
	}, nil
}

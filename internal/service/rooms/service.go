package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

// Service сервис справочника комнат
type Service struct {
	roomRepo RoomRepository
	ledger   ReservationLedger
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	ledger ReservationLedger,
	logger Logger,
) *Service {
	return &Service{
		roomRepo: roomRepo,
		ledger:   ledger,
		logger:   logger,
	}
}

// List получает все комнаты
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	roomList, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms", len(roomList))
	return models.FromDomainRoomList(roomList), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// Create создает новую комнату
func (s *Service) Create(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: creating room name=%q capacity=%d available=%t",
		req.Name, req.Capacity, req.Available)

	room := req.ToDomainRoom()
	if err := validateRoom(room); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNameAlreadyUsed) {
			s.logger.Warn("Create: room name=%q already used", req.Name)
			return nil, ErrNameAlreadyUsed
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room id=%d", created.ID)
	return models.FromDomainRoom(created), nil
}

// Update обновляет имя, вместимость и доступность комнаты
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%d name=%q capacity=%d available=%t",
		id, req.Name, req.Capacity, req.Available)

	room := &domain.Room{
		ID:        id,
		Name:      req.Name,
		Capacity:  req.Capacity,
		Available: req.Available,
	}

	if err := validateRoom(room); err != nil {
		s.logger.Warn("Update: validation failed for room id=%d: %v", id, err)
		return nil, err
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("Update: room id=%d not found", id)
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrNameAlreadyUsed):
			s.logger.Warn("Update: room name=%q already used", req.Name)
			return nil, ErrNameAlreadyUsed
		default:
			s.logger.Error("Update: repository error for room id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	// Перечитываем комнату, чтобы вернуть актуальный created_at
	updated, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reread room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - failed to reread room: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated room id=%d", id)
	return models.FromDomainRoom(updated), nil
}

// Delete удаляет комнату.
// Комната с хотя бы одним бронированием не удаляется - сначала журнал
// бронирований опрашивается через ReservationLedger.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting room id=%d", id)

	reservations, err := s.ledger.GetByRoomID(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to check reservations for room id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to check reservations: %v", ErrInternal, err)
	}

	if len(reservations) > 0 {
		s.logger.Warn("Delete: room id=%d has %d active reservations", id, len(reservations))
		return ErrRoomHasReservations
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("Delete: room id=%d not found", id)
			return ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrRoomHasReservations):
			// Гонка между проверкой и удалением: бронирование появилось
			// после опроса журнала, FK constraint его поймал
			s.logger.Warn("Delete: room id=%d acquired reservations concurrently", id)
			return ErrRoomHasReservations
		default:
			s.logger.Error("Delete: repository error for room id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: successfully deleted room id=%d", id)
	return nil
}

// validateRoom проверяет правила именования и вместимости комнаты
func validateRoom(room *domain.Room) error {
	if !room.HasValidName() {
		return fmt.Errorf("%w: name must be non-empty and at most %d characters",
			ErrInvalidInput, domain.MaxRoomNameLength)
	}
	if !room.HasValidCapacity() {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	return nil
}

package reservations

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/reservations/models"
)

// Service сервис чтения и удаления бронирований.
// Создание и правка живут в отдельных use case-ах: им нужна транзакционная
// проверка конфликта слота, которой у простых операций нет.
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// List получает все бронирования, отсортированные по дате брони
func (s *Service) List(ctx context.Context) (*models.ReservationListResponse, error) {
	reservations, err := s.reservationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// Filter получает бронирования за период [DateFrom, DateTo] включительно,
// опционально суженные до одной комнаты.
// Пустой период (DateFrom == DateTo) возвращает брони ровно на этот момент.
func (s *Service) Filter(ctx context.Context, req *models.FilterRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("Filter: period=%s to %s, room=%v",
		req.DateFrom.Format("2006-01-02 15:04"), req.DateTo.Format("2006-01-02 15:04"), req.RoomID)

	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		s.logger.Warn("Filter: missing date range bounds")
		return nil, fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidInput)
	}

	filter := req.ToDomainFilter()
	if !filter.IsValidRange() {
		s.logger.Warn("Filter: dateFrom is after dateTo")
		return nil, ErrInvalidDateRange
	}

	reservations, err := s.reservationRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Filter: repository error: %v", err)
		return nil, fmt.Errorf("%w: Filter - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Filter: fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// GetByRoomID получает все бронирования комнаты.
// Используется delete-guard-ом справочника комнат и HTTP маршрутом
// GET /rooms/{roomId}/reservations.
func (s *Service) GetByRoomID(ctx context.Context, roomID int64) (*models.ReservationListResponse, error) {
	reservations, err := s.reservationRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		s.logger.Error("GetByRoomID: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetByRoomID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByRoomID: fetched %d reservations for room id=%d", len(reservations), roomID)
	return models.FromDomainReservationList(reservations), nil
}

// Delete удаляет бронирование без дополнительных условий
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

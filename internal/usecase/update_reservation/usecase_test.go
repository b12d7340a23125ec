package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

// Фейки зависимостей use case

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
	updateErr    error
	updated      []*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeReservationRepo) ExistsAtSlot(_ context.Context, roomID int64, at time.Time, excludeID *int64) (bool, error) {
	for id, res := range f.reservations {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if res.OccupiesSlot(roomID, at) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, res *domain.Reservation) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.reservations[res.ID]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	copied := *res
	f.reservations[res.ID] = &copied
	f.updated = append(f.updated, &copied)
	return nil
}

type fakeRoomDirectory struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomDirectory) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	slotTen    = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	slotTwelve = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

func newFixture() (*fakeReservationRepo, *fakeRoomDirectory) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: {ID: 1, RoomID: 1, ReservedAt: slotTen, RequestedBy: "ivanov",
			CreatedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)},
		2: {ID: 2, RoomID: 1, ReservedAt: slotTwelve, RequestedBy: "petrov",
			CreatedAt: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)},
	}}
	rooms := &fakeRoomDirectory{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Переговорная 1", Capacity: 8, Available: true},
		2: {ID: 2, Name: "Переговорная 2", Capacity: 4, Available: true},
		3: {ID: 3, Name: "Склад", Capacity: 2, Available: false},
	}}
	return repo, rooms
}

func TestExecute_MovesReservationToFreeSlot(t *testing.T) {
	repo, rooms := newFixture()
	uc := NewUseCase(repo, rooms, fakeTxManager{}, nopLogger{})

	newSlot := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		ID:          1,
		RoomID:      2,
		ReservedAt:  newSlot,
		RequestedBy: "sidorov",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(2), resp.RoomID)
	assert.True(t, resp.ReservedAt.Equal(newSlot))
	assert.Equal(t, "sidorov", resp.RequestedBy)
	assert.Equal(t, "Переговорная 2", resp.RoomName)
	// CreatedAt исходной записи не меняется при правке
	assert.True(t, resp.CreatedAt.Equal(time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)))
}

func TestExecute_SelfSlotEditSucceeds(t *testing.T) {
	// Правка брони без смены слота не должна конфликтовать сама с собой
	repo, rooms := newFixture()
	uc := NewUseCase(repo, rooms, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ID:         1,
		RoomID:     1,
		ReservedAt: slotTen,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.RoomID)
	assert.True(t, resp.ReservedAt.Equal(slotTen))
}

func TestExecute_KeepsAuthorWhenRequestedByEmpty(t *testing.T) {
	repo, rooms := newFixture()
	uc := NewUseCase(repo, rooms, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ID:         1,
		RoomID:     1,
		ReservedAt: time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "ivanov", resp.RequestedBy)
}

func TestExecute_RejectsOccupiedSlot(t *testing.T) {
	// Слот 12:00 в комнате 1 занят бронью id=2
	repo, rooms := newFixture()
	uc := NewUseCase(repo, rooms, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ID:         1,
		RoomID:     1,
		ReservedAt: slotTwelve,
	})

	assert.ErrorIs(t, err, ErrDateAlreadyBooked)
	assert.Empty(t, repo.updated)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "reservation not found",
			req:     &Request{ID: 99, RoomID: 1, ReservedAt: slotTen},
			wantErr: ErrReservationNotFound,
		},
		{
			name:    "room not found",
			req:     &Request{ID: 1, RoomID: 42, ReservedAt: slotTen},
			wantErr: ErrRoomRequired,
		},
		{
			name:    "room not available",
			req:     &Request{ID: 1, RoomID: 3, ReservedAt: slotTen},
			wantErr: ErrRoomNotAvailable,
		},
		{
			name:    "non-positive reservation id",
			req:     &Request{ID: 0, RoomID: 1, ReservedAt: slotTen},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero reserved_at",
			req:     &Request{ID: 1, RoomID: 1},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, rooms := newFixture()
			uc := NewUseCase(repo, rooms, fakeTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.updated)
		})
	}
}

func TestExecute_MapsConcurrentConstraintViolation(t *testing.T) {
	repo, rooms := newFixture()
	repo.updateErr = reservationRepo.ErrDateAlreadyBooked
	uc := NewUseCase(repo, rooms, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ID:         1,
		RoomID:     2,
		ReservedAt: time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrDateAlreadyBooked)
}

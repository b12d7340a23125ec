package create_reservation

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
	existing    map[int64][]time.Time // занятые слоты по комнатам
	createErr   error
	existsErr   error
	created     []*domain.Reservation
	nextID      int64
	slotQueries int
}

func (f *fakeReservationRepo) ExistsAtSlot(_ context.Context, roomID int64, at time.Time, _ *int64) (bool, error) {
	f.slotQueries++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, slot := range f.existing[roomID] {
		if slot.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *res
	created.ID = f.nextID
	created.CreatedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	f.created = append(f.created, &created)
	return &created, nil
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

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeReservationRepo, rooms *fakeRoomDirectory) (*UseCase, *fakeTxManager) {
	txMgr := &fakeTxManager{}
	return NewUseCase(repo, rooms, txMgr, nopLogger{}), txMgr
}

func TestExecute_CreatesReservation(t *testing.T) {
	slot := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	repo := &fakeReservationRepo{existing: map[int64][]time.Time{}}
	rooms := &fakeRoomDirectory{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Переговорная 1", Capacity: 8, Available: true},
	}}
	uc, txMgr := newTestUseCase(repo, rooms)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:      1,
		ReservedAt:  slot,
		RequestedBy: "ivanov",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1), resp.RoomID)
	assert.True(t, resp.ReservedAt.Equal(slot))
	assert.Equal(t, "ivanov", resp.RequestedBy)
	assert.Equal(t, "Переговорная 1", resp.RoomName)
	assert.Equal(t, 1, txMgr.calls)
}

func TestExecute_DefaultsRequestedBy(t *testing.T) {
	repo := &fakeReservationRepo{existing: map[int64][]time.Time{}}
	rooms := &fakeRoomDirectory{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Зал", Capacity: 4, Available: true},
	}}
	uc, _ := newTestUseCase(repo, rooms)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:     1,
		ReservedAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRequestedBy, resp.RequestedBy)
}

func TestExecute_ConflictMatrix(t *testing.T) {
	slot := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		roomID  int64
		at      time.Time
		wantErr error
	}{
		{
			name:    "same room same instant is rejected",
			roomID:  1,
			at:      slot,
			wantErr: ErrDateAlreadyBooked,
		},
		{
			name:   "same room an hour later is accepted",
			roomID: 1,
			at:     slot.Add(time.Hour),
		},
		{
			name:   "other room same instant is accepted",
			roomID: 2,
			at:     slot,
		},
		{
			name:   "same room same day different time is accepted",
			roomID: 1,
			at:     time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{existing: map[int64][]time.Time{
				1: {slot},
			}}
			rooms := &fakeRoomDirectory{rooms: map[int64]*domain.Room{
				1: {ID: 1, Name: "Переговорная 1", Capacity: 8, Available: true},
				2: {ID: 2, Name: "Переговорная 2", Capacity: 4, Available: true},
			}}
			uc, _ := newTestUseCase(repo, rooms)

			_, err := uc.Execute(context.Background(), &Request{
				RoomID:      tt.roomID,
				ReservedAt:  tt.at,
				RequestedBy: "ivanov",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.created)
			} else {
				assert.NoError(t, err)
				assert.Len(t, repo.created, 1)
			}
		})
	}
}

func TestExecute_RoomChecks(t *testing.T) {
	slot := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     *Request
		rooms   map[int64]*domain.Room
		wantErr error
	}{
		{
			name:    "missing room",
			req:     &Request{RoomID: 42, ReservedAt: slot},
			rooms:   map[int64]*domain.Room{},
			wantErr: ErrRoomRequired,
		},
		{
			name: "unavailable room",
			req:  &Request{RoomID: 1, ReservedAt: slot},
			rooms: map[int64]*domain.Room{
				1: {ID: 1, Name: "Зал", Capacity: 4, Available: false},
			},
			wantErr: ErrRoomNotAvailable,
		},
		{
			name:    "non-positive room id",
			req:     &Request{RoomID: 0, ReservedAt: slot},
			rooms:   map[int64]*domain.Room{},
			wantErr: ErrRoomRequired,
		},
		{
			name: "zero reserved_at",
			req:  &Request{RoomID: 1},
			rooms: map[int64]*domain.Room{
				1: {ID: 1, Name: "Зал", Capacity: 4, Available: true},
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{existing: map[int64][]time.Time{}}
			uc, _ := newTestUseCase(repo, &fakeRoomDirectory{rooms: tt.rooms})

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.created)
		})
	}
}

func TestExecute_MapsConcurrentConstraintViolation(t *testing.T) {
	// Проверка слота прошла, но вставка упёрлась в unique constraint:
	// конкурентная бронь заняла слот между проверкой и записью
	repo := &fakeReservationRepo{
		existing:  map[int64][]time.Time{},
		createErr: reservationRepo.ErrDateAlreadyBooked,
	}
	rooms := &fakeRoomDirectory{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Зал", Capacity: 4, Available: true},
	}}
	uc, _ := newTestUseCase(repo, rooms)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:      1,
		ReservedAt:  time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		RequestedBy: "ivanov",
	})

	assert.ErrorIs(t, err, ErrDateAlreadyBooked)
}

func TestExecute_MapsConcurrentRoomDeletion(t *testing.T) {
	repo := &fakeReservationRepo{
		existing:  map[int64][]time.Time{},
		createErr: reservationRepo.ErrRoomNotFound,
	}
	rooms := &fakeRoomDirectory{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Зал", Capacity: 4, Available: true},
	}}
	uc, _ := newTestUseCase(repo, rooms)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:      1,
		ReservedAt:  time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		RequestedBy: "ivanov",
	})

	assert.ErrorIs(t, err, ErrRoomRequired)
}

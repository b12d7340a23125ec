package reservations

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/reservations/models"
)

// Фейк репозитория: хранит брони в памяти, сортирует как хранилище

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
	deleted      []int64
}

func (f *fakeReservationRepo) sorted(match func(*domain.Reservation) bool) []*domain.Reservation {
	result := make([]*domain.Reservation, 0, len(f.reservations))
	for _, res := range f.reservations {
		if match(res) {
			copied := *res
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].ReservedAt.Equal(result[j].ReservedAt) {
			return result[i].ReservedAt.Before(result[j].ReservedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func (f *fakeReservationRepo) List(_ context.Context) ([]*domain.Reservation, error) {
	return f.sorted(func(*domain.Reservation) bool { return true }), nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeReservationRepo) GetByFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	return f.sorted(filter.Matches), nil
}

func (f *fakeReservationRepo) GetByRoomID(_ context.Context, roomID int64) ([]*domain.Reservation, error) {
	return f.sorted(func(res *domain.Reservation) bool { return res.RoomID == roomID }), nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.reservations[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.reservations, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	sep1Morning = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	sep1Evening = time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	sep5Morning = time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
)

func newTestService() (*Service, *fakeReservationRepo) {
	repo := &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
		1: {ID: 1, RoomID: 1, ReservedAt: sep1Morning, RequestedBy: "ivanov", RoomName: "Переговорная 1"},
		2: {ID: 2, RoomID: 2, ReservedAt: sep1Evening, RequestedBy: "petrov", RoomName: "Переговорная 2"},
		3: {ID: 3, RoomID: 1, ReservedAt: sep5Morning, RequestedBy: "ivanov", RoomName: "Переговорная 1"},
	}}
	return NewService(repo, nopLogger{}), repo
}

func TestService_List_OrderedByDate(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Reservations, 3)
	assert.Equal(t, int64(1), resp.Reservations[0].ID)
	assert.Equal(t, int64(2), resp.Reservations[1].ID)
	assert.Equal(t, int64(3), resp.Reservations[2].ID)
	// Имя комнаты приходит из join-а хранилища
	assert.Equal(t, "Переговорная 1", resp.Reservations[0].RoomName)
}

func TestService_GetByID(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.RoomID)
	assert.Equal(t, "petrov", resp.RequestedBy)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_Filter(t *testing.T) {
	roomOne := int64(1)

	tests := []struct {
		name    string
		req     *models.FilterRequest
		wantIDs []int64
		wantErr error
	}{
		{
			name:    "whole period",
			req:     &models.FilterRequest{DateFrom: sep1Morning, DateTo: sep5Morning},
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "bounds are inclusive",
			req:     &models.FilterRequest{DateFrom: sep1Evening, DateTo: sep5Morning},
			wantIDs: []int64{2, 3},
		},
		{
			name:    "degenerate period matches exact instant",
			req:     &models.FilterRequest{DateFrom: sep1Morning, DateTo: sep1Morning},
			wantIDs: []int64{1},
		},
		{
			name:    "narrowed to one room",
			req:     &models.FilterRequest{DateFrom: sep1Morning, DateTo: sep5Morning, RoomID: &roomOne},
			wantIDs: []int64{1, 3},
		},
		{
			name:    "empty period",
			req:     &models.FilterRequest{DateFrom: sep1Morning.Add(time.Minute), DateTo: sep1Evening.Add(-time.Minute)},
			wantIDs: []int64{},
		},
		{
			name:    "from after to",
			req:     &models.FilterRequest{DateFrom: sep5Morning, DateTo: sep1Morning},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "missing bounds",
			req:     &models.FilterRequest{},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()

			resp, err := svc.Filter(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			gotIDs := make([]int64, 0, len(resp.Reservations))
			for _, res := range resp.Reservations {
				gotIDs = append(gotIDs, res.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestService_GetByRoomID(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.GetByRoomID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, int64(1), resp.Reservations[0].ID)
	assert.Equal(t, int64(3), resp.Reservations[1].ID)

	empty, err := svc.GetByRoomID(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, empty.Reservations)
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService()

	err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)

	err = svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

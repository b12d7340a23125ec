package create_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createReservation "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	resp   *createReservation.Response
	err    error
	gotReq *createReservation.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	slot := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID:          7,
		RoomID:      1,
		ReservedAt:  slot,
		RequestedBy: "admin",
		CreatedAt:   time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
		RoomName:    "Переговорная 1",
	}}

	rec := doRequest(t, uc, `{"roomId": 1, "reservedAt": "2026-09-01T10:00:00Z"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-09-01T10:00:00Z", resp.ReservedAt)
	assert.Equal(t, "Переговорная 1", resp.RoomName)

	// Без заголовка X-User-Name и middleware вызывающим становится псевдо-пользователь
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, domain.DefaultRequestedBy, uc.gotReq.RequestedBy)
	assert.True(t, uc.gotReq.ReservedAt.Equal(slot))
}

func TestHandle_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		useCaseErr error
		wantStatus int
	}{
		{
			name:       "malformed json",
			body:       `{"roomId": `,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unparsable date",
			body:       `{"roomId": 1, "reservedAt": "01.09.2026 10:00"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "room not found",
			body:       `{"roomId": 42, "reservedAt": "2026-09-01T10:00:00Z"}`,
			useCaseErr: createReservation.ErrRoomRequired,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "room not available",
			body:       `{"roomId": 1, "reservedAt": "2026-09-01T10:00:00Z"}`,
			useCaseErr: createReservation.ErrRoomNotAvailable,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "slot already booked",
			body:       `{"roomId": 1, "reservedAt": "2026-09-01T10:00:00Z"}`,
			useCaseErr: createReservation.ErrDateAlreadyBooked,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid input",
			body:       `{"roomId": 1, "reservedAt": "2026-09-01T10:00:00Z"}`,
			useCaseErr: createReservation.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "internal error",
			body:       `{"roomId": 1, "reservedAt": "2026-09-01T10:00:00Z"}`,
			useCaseErr: errors.New("db gone"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.useCaseErr}

			rec := doRequest(t, uc, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservation_OccupiesSlot(t *testing.T) {
	slot := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	res := &Reservation{
		ID:         1,
		RoomID:     5,
		ReservedAt: slot,
	}

	tests := []struct {
		name   string
		roomID int64
		at     time.Time
		want   bool
	}{
		{
			name:   "same room same instant",
			roomID: 5,
			at:     slot,
			want:   true,
		},
		{
			name:   "same room different time",
			roomID: 5,
			at:     slot.Add(time.Hour),
			want:   false,
		},
		{
			name:   "different room same instant",
			roomID: 6,
			at:     slot,
			want:   false,
		},
		{
			name:   "same instant in another zone",
			roomID: 5,
			at:     slot.In(time.FixedZone("MSK", 3*60*60)),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, res.OccupiesSlot(tt.roomID, tt.at))
		})
	}
}

func TestReservationFilter_IsValidRange(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dateFrom time.Time
		dateTo   time.Time
		want     bool
	}{
		{
			name:     "from before to",
			dateFrom: day,
			dateTo:   day.AddDate(0, 0, 7),
			want:     true,
		},
		{
			name:     "from equals to",
			dateFrom: day,
			dateTo:   day,
			want:     true,
		},
		{
			name:     "from after to",
			dateFrom: day.AddDate(0, 0, 1),
			dateTo:   day,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &ReservationFilter{DateFrom: tt.dateFrom, DateTo: tt.dateTo}
			assert.Equal(t, tt.want, f.IsValidRange())
		})
	}
}

func TestReservationFilter_Matches(t *testing.T) {
	from := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	roomID := int64(3)

	tests := []struct {
		name   string
		filter ReservationFilter
		res    Reservation
		want   bool
	}{
		{
			name:   "inside period",
			filter: ReservationFilter{DateFrom: from, DateTo: to},
			res:    Reservation{RoomID: 3, ReservedAt: from.Add(2 * time.Hour)},
			want:   true,
		},
		{
			name:   "exactly on lower bound",
			filter: ReservationFilter{DateFrom: from, DateTo: to},
			res:    Reservation{RoomID: 3, ReservedAt: from},
			want:   true,
		},
		{
			name:   "exactly on upper bound",
			filter: ReservationFilter{DateFrom: from, DateTo: to},
			res:    Reservation{RoomID: 3, ReservedAt: to},
			want:   true,
		},
		{
			name:   "before period",
			filter: ReservationFilter{DateFrom: from, DateTo: to},
			res:    Reservation{RoomID: 3, ReservedAt: from.Add(-time.Minute)},
			want:   false,
		},
		{
			name:   "after period",
			filter: ReservationFilter{DateFrom: from, DateTo: to},
			res:    Reservation{RoomID: 3, ReservedAt: to.Add(time.Minute)},
			want:   false,
		},
		{
			name:   "degenerate period matches exact instant",
			filter: ReservationFilter{DateFrom: from, DateTo: from},
			res:    Reservation{RoomID: 3, ReservedAt: from},
			want:   true,
		},
		{
			name:   "room filter matches",
			filter: ReservationFilter{DateFrom: from, DateTo: to, RoomID: &roomID},
			res:    Reservation{RoomID: 3, ReservedAt: from.Add(time.Hour)},
			want:   true,
		},
		{
			name:   "room filter rejects other room",
			filter: ReservationFilter{DateFrom: from, DateTo: to, RoomID: &roomID},
			res:    Reservation{RoomID: 4, ReservedAt: from.Add(time.Hour)},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(&tt.res))
		})
	}
}

func TestRoom_Validation(t *testing.T) {
	t.Run("valid name", func(t *testing.T) {
		room := &Room{Name: "Переговорная 1", Capacity: 8}
		assert.True(t, room.HasValidName())
		assert.True(t, room.HasValidCapacity())
	})

	t.Run("empty name", func(t *testing.T) {
		room := &Room{Name: "", Capacity: 8}
		assert.False(t, room.HasValidName())
	})

	t.Run("name at max length", func(t *testing.T) {
		room := &Room{Name: strings.Repeat("а", MaxRoomNameLength)}
		assert.True(t, room.HasValidName())
	})

	t.Run("name over max length", func(t *testing.T) {
		room := &Room{Name: strings.Repeat("а", MaxRoomNameLength+1)}
		assert.False(t, room.HasValidName())
	})

	t.Run("zero capacity", func(t *testing.T) {
		room := &Room{Name: "Зал", Capacity: 0}
		assert.False(t, room.HasValidCapacity())
	})

	t.Run("negative capacity", func(t *testing.T) {
		room := &Room{Name: "Зал", Capacity: -2}
		assert.False(t, room.HasValidCapacity())
	})

	t.Run("unavailable room is not bookable", func(t *testing.T) {
		room := &Room{Name: "Зал", Capacity: 4, Available: false}
		assert.False(t, room.IsBookable())
	})
}

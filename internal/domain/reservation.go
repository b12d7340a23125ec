package domain

import "time"

// Reservation represents a binding of one room to one date/time slot
type Reservation struct {
	ID         int64
	RoomID     int64
	ReservedAt time.Time
	CreatedAt  time.Time

	// RequestedBy идентификатор пользователя, создавшего бронь.
	// Передаётся веб-слоем как непрозрачная строка.
	RequestedBy string

	// Denormalized data, recomputed on read via join against rooms
	RoomName string
}

// OccupiesSlot returns true if the reservation holds the given (room, timestamp) slot.
// Два бронирования конфликтуют только при полном совпадении комнаты и момента времени:
// одна и та же комната в разное время одного дня конфликтом не считается.
func (r *Reservation) OccupiesSlot(roomID int64, at time.Time) bool {
	return r.RoomID == roomID && r.ReservedAt.Equal(at)
}

// ReservationFilter фильтр для выборки бронирований
type ReservationFilter struct {
	DateFrom time.Time // Начало периода (включительно)
	DateTo   time.Time // Конец периода (включительно)
	RoomID   *int64    // Фильтр по комнате (опционально, если nil - все комнаты)
}

// IsValidRange returns true if the filter period is well-formed (from <= to)
func (f *ReservationFilter) IsValidRange() bool {
	return !f.DateFrom.After(f.DateTo)
}

// Matches returns true if the reservation falls inside the filter
func (f *ReservationFilter) Matches(res *Reservation) bool {
	if f.RoomID != nil && res.RoomID != *f.RoomID {
		return false
	}
	if res.ReservedAt.Before(f.DateFrom) || res.ReservedAt.After(f.DateTo) {
		return false
	}
	return true
}

package domain

import "time"

// Room represents a bookable shared room in the system
type Room struct {
	ID        int64
	Name      string
	Capacity  int
	Available bool
	CreatedAt time.Time
}

// IsBookable returns true if the room accepts new reservations
func (r *Room) IsBookable() bool {
	return r.Available
}

// HasValidName returns true if the room name satisfies the naming rules
func (r *Room) HasValidName() bool {
	return r.Name != "" && len([]rune(r.Name)) <= MaxRoomNameLength
}

// HasValidCapacity returns true if the room capacity is a positive number
func (r *Room) HasValidCapacity() bool {
	return r.Capacity >= MinRoomCapacity
}

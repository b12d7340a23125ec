package domain

// Business validation constants
const (
	MaxRoomNameLength = 100
	MinRoomCapacity   = 1
)

// DefaultRequestedBy фиксированный псевдо-пользователь.
// Используется, когда веб-слой не передал идентификатор вызывающего.
const DefaultRequestedBy = "admin"

// Time format constants
const (
	DateTimeFormat = "2006-01-02T15:04:05Z07:00" // RFC 3339
	DateFormat     = "2006-01-02"                // YYYY-MM-DD
)

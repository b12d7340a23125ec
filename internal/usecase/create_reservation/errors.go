package create_reservation

import "errors"

var (
	// ErrRoomRequired возвращается, когда комната не указана или не существует
	ErrRoomRequired = errors.New("create_reservation: room required")

	// ErrRoomNotAvailable возвращается, когда комната помечена недоступной
	ErrRoomNotAvailable = errors.New("create_reservation: room is not available")

	// ErrDateAlreadyBooked возвращается, когда слот (комната, дата) уже занят
	ErrDateAlreadyBooked = errors.New("create_reservation: date already booked for room")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

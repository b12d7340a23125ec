package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrRoomRequired возвращается, когда комната не указана или не существует
	ErrRoomRequired = errors.New("update_reservation: room required")

	// ErrRoomNotAvailable возвращается, когда комната помечена недоступной
	ErrRoomNotAvailable = errors.New("update_reservation: room is not available")

	// ErrDateAlreadyBooked возвращается, когда слот (комната, дата) занят
	// другим бронированием
	ErrDateAlreadyBooked = errors.New("update_reservation: date already booked for room")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)

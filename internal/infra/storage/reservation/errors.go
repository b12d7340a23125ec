package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrDateAlreadyBooked возвращается при нарушении уникальности слота
	// (room_id, reserved_at) - комната уже забронирована на этот момент времени
	ErrDateAlreadyBooked = errors.New("reservation.repository: date already booked for room")

	// ErrRoomNotFound возвращается при нарушении foreign key на rooms -
	// бронирование ссылается на несуществующую комнату
	ErrRoomNotFound = errors.New("reservation.repository: referenced room not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)

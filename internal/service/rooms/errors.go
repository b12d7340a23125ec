package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrNameAlreadyUsed возвращается, когда имя комнаты уже занято другой комнатой
	ErrNameAlreadyUsed = errors.New("room name already used")

	// ErrRoomHasReservations возвращается при попытке удалить комнату
	// с активными бронированиями
	ErrRoomHasReservations = errors.New("room has active reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms service: internal error")
)

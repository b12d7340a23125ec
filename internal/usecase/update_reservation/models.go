package update_reservation

import "time"

// Request модель запроса на обновление бронирования
type Request struct {
	ID          int64     // ID обновляемого бронирования
	RoomID      int64     // ID комнаты
	ReservedAt  time.Time // Дата и время брони
	RequestedBy string    // Идентификатор вызывающего (непрозрачная строка)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID          int64     // ID бронирования
	RoomID      int64     // ID комнаты
	ReservedAt  time.Time // Дата и время брони
	RequestedBy string    // Идентификатор вызывающего
	CreatedAt   time.Time // Время создания записи

	// Денормализованные данные
	RoomName string // Название комнаты
}

package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	RoomID      int64     // ID комнаты
	ReservedAt  time.Time // Дата и время брони (с точностью до момента времени)
	RequestedBy string    // Идентификатор вызывающего (непрозрачная строка)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64     // ID созданного бронирования
	RoomID      int64     // ID комнаты
	ReservedAt  time.Time // Дата и время брони
	RequestedBy string    // Идентификатор вызывающего
	CreatedAt   time.Time // Время создания записи

	// Денормализованные данные
	RoomName string // Название комнаты
}

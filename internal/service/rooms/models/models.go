package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
}

// ToDomainRoom конвертирует request в domain модель
func (r *CreateRoomRequest) ToDomainRoom() *domain.Room {
	return &domain.Room{
		Name:      r.Name,
		Capacity:  r.Capacity,
		Available: r.Available,
	}
}

// UpdateRoomRequest запрос на обновление комнаты
type UpdateRoomRequest struct {
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(room *domain.Room) *RoomResponse {
	if room == nil {
		return nil
	}

	return &RoomResponse{
		ID:        room.ID,
		Name:      room.Name,
		Capacity:  room.Capacity,
		Available: room.Available,
		CreatedAt: room.CreatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(roomList []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(roomList)),
	}

	for _, room := range roomList {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}

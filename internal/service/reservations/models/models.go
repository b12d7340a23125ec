package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модели

// FilterRequest запрос на выборку бронирований за период
type FilterRequest struct {
	DateFrom time.Time `json:"dateFrom"`         // Начало периода (включительно)
	DateTo   time.Time `json:"dateTo"`           // Конец периода (включительно)
	RoomID   *int64    `json:"roomId,omitempty"` // Фильтр по комнате (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *FilterRequest) ToDomainFilter() domain.ReservationFilter {
	return domain.ReservationFilter{
		DateFrom: r.DateFrom,
		DateTo:   r.DateTo,
		RoomID:   r.RoomID,
	}
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID          int64     `json:"id"`
	RoomID      int64     `json:"roomId"`
	ReservedAt  time.Time `json:"reservedAt"`
	RequestedBy string    `json:"requestedBy"`
	CreatedAt   time.Time `json:"createdAt"`

	// Денормализованные данные, вычисляются при чтении
	RoomName string `json:"roomName"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	if res == nil {
		return nil
	}

	return &ReservationResponse{
		ID:          res.ID,
		RoomID:      res.RoomID,
		ReservedAt:  res.ReservedAt,
		RequestedBy: res.RequestedBy,
		CreatedAt:   res.CreatedAt,
		RoomName:    res.RoomName,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, res := range reservations {
		if resResp := FromDomainReservation(res); resResp != nil {
			resp.Reservations = append(resp.Reservations, *resResp)
		}
	}

	return resp
}

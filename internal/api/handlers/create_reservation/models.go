package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createReservation "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID     int64  `json:"roomId"`
	ReservedAt string `json:"reservedAt"` // RFC3339, например "2026-09-01T10:00:00Z"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64  `json:"id"`
	RoomID      int64  `json:"roomId"`
	ReservedAt  string `json:"reservedAt"`
	RequestedBy string `json:"requestedBy"`
	RoomName    string `json:"roomName"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(requestedBy string) (*createReservation.Request, error) {
	// Парсим дату и время брони
	reservedAt, err := time.Parse(domain.DateTimeFormat, r.ReservedAt)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		RoomID:      r.RoomID,
		ReservedAt:  reservedAt,
		RequestedBy: requestedBy,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		RoomID:      resp.RoomID,
		ReservedAt:  resp.ReservedAt.Format(domain.DateTimeFormat),
		RequestedBy: resp.RequestedBy,
		RoomName:    resp.RoomName,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}

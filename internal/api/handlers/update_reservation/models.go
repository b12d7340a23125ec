package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	updateReservation "github.com/m04kA/SMC-RoomBookingService/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model
type UpdateReservationRequest struct {
	RoomID     int64  `json:"roomId"`
	ReservedAt string `json:"reservedAt"` // RFC3339
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
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID int64, requestedBy string) (*updateReservation.Request, error) {
	reservedAt, err := time.Parse(domain.DateTimeFormat, r.ReservedAt)
	if err != nil {
		return nil, err
	}

	return &updateReservation.Request{
		ID:          reservationID,
		RoomID:      r.RoomID,
		ReservedAt:  reservedAt,
		RequestedBy: requestedBy,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		RoomID:      resp.RoomID,
		ReservedAt:  resp.ReservedAt.Format(domain.DateTimeFormat),
		RequestedBy: resp.RequestedBy,
		RoomName:    resp.RoomName,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}

package update_reservation

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: reservation ID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrRoomRequired)
	}

	if req.ReservedAt.IsZero() {
		return fmt.Errorf("%w: reservedAt is required", ErrInvalidInput)
	}

	return nil
}

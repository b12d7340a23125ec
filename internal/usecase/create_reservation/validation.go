package create_reservation

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrRoomRequired)
	}

	if req.ReservedAt.IsZero() {
		return fmt.Errorf("%w: reservedAt is required", ErrInvalidInput)
	}

	return nil
}

package list_reservations

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/reservations/models"
)

// ToFilterRequest формирует запрос фильтрации из query параметров.
// Обе границы периода обязательны, комната опциональна.
func ToFilterRequest(dateFromStr, dateToStr, roomIDStr string) (*models.FilterRequest, error) {
	dateFrom, err := parseDateTime(dateFromStr)
	if err != nil {
		return nil, err
	}

	dateTo, err := parseDateTime(dateToStr)
	if err != nil {
		return nil, err
	}

	req := &models.FilterRequest{
		DateFrom: dateFrom,
		DateTo:   dateTo,
	}

	// Парсим roomId если указан
	if roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomID = &roomID
	}

	return req, nil
}

// parseDateTime принимает полную метку времени или дату без времени
func parseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(domain.DateTimeFormat, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormat, value)
}

package initiate_booking

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("initiate_booking: facility not found")

	// ErrWindowUnavailable возвращается, когда запрошенное окно больше недоступно
	ErrWindowUnavailable = errors.New("initiate_booking: requested window is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("initiate_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("initiate_booking: internal error")
)

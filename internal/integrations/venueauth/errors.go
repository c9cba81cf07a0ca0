package venueauth

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("venueauth: facility not found")

	// ErrInvalidResponse возвращается при некорректном ответе VenueService
	ErrInvalidResponse = errors.New("venueauth: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("venueauth: internal error")
)

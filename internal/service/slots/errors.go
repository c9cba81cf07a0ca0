package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("court not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrSlotOverlap возвращается, когда слот пересекается с существующим слотом корта
	ErrSlotOverlap = errors.New("slot overlaps an existing slot")

	// ErrSlotFrozen возвращается при попытке менять время или цену слота
	// с подтверждённым бронированием - редактируются только maintenance-поля
	ErrSlotFrozen = errors.New("slot times and price are frozen by a confirmed booking")

	// ErrSlotHasBooking возвращается при попытке удалить слот
	// с подтверждённым бронированием
	ErrSlotHasBooking = errors.New("slot has a confirmed booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

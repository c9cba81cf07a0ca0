package confirm_booking

import "errors"

var (
	// ErrSignatureMismatch возвращается, когда HMAC подпись callback'а не сходится
	ErrSignatureMismatch = errors.New("confirm_booking: payment signature mismatch")

	// ErrSlotNotFound возвращается, когда слот из заказа не найден
	ErrSlotNotFound = errors.New("confirm_booking: time slot not found")

	// ErrSlotConflict возвращается, когда на один из слотов уже есть
	// подтверждённое бронирование - запись отклоняется целиком
	ErrSlotConflict = errors.New("confirm_booking: slot already has a confirmed booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)

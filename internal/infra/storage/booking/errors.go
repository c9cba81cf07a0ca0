package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotAlreadyBooked возвращается, когда на слот уже есть подтверждённое бронирование
	// Источник - частичный уникальный индекс bookings(time_slot_id) WHERE status = 'confirmed'
	ErrSlotAlreadyBooked = errors.New("booking.repository: slot already has a confirmed booking")

	// ErrDuplicatePayment возвращается при повторной вставке бронирования
	// с тем же (payment_ref, time_slot_id) - повторная доставка payment callback
	ErrDuplicatePayment = errors.New("booking.repository: booking for this payment already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

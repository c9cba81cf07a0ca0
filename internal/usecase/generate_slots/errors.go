package generate_slots

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("generate_slots: court not found")

	// ErrCourtInactive возвращается при попытке генерации слотов для выключенного корта
	ErrCourtInactive = errors.New("generate_slots: court is inactive")

	// ErrAccessDenied возвращается, когда пользователь не управляет площадкой корта
	ErrAccessDenied = errors.New("generate_slots: access denied")

	// ErrNoNewSlots возвращается, когда после фильтрации пересечений не осталось
	// ни одного нового слота - генерация не должна молча завершаться no-op'ом
	ErrNoNewSlots = errors.New("generate_slots: no new time slots to create")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)

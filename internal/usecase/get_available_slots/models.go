package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса на получение слотов корта с доступностью
type Request struct {
	CourtID int64
	Date    time.Time // Дата без времени
}

// Response модель ответа со списком слотов и их доступностью
type Response struct {
	CourtID int64
	Date    time.Time
	Slots   []Slot
}

// Slot слот с рассчитанной доступностью и эффективной ценой
// ID == nil для нематериализованных рабочих часов - строки в БД нет,
// слот доступен по графику работы корта
type Slot struct {
	ID                 *int64
	StartTime          types.TimeString
	EndTime            types.TimeString
	Price              float64
	Available          bool
	MaintenanceBlocked bool
}

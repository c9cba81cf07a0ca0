package select_window

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса на подбор последовательного окна слотов
type Request struct {
	FacilityID int64
	Date       time.Time
	StartTime  types.TimeString
	Hours      int // Количество последовательных часовых слотов
}

// Response модель ответа подбора окна
// Отсутствие подходящего окна - валидный результат, а не ошибка
type Response struct {
	Available  bool
	CourtID    int64
	CourtName  string
	SlotIDs    []int64
	Slots      []WindowSlot
	TotalPrice float64
}

// WindowSlot слот выбранного окна
type WindowSlot struct {
	ID        int64
	StartTime types.TimeString
	EndTime   types.TimeString
	Price     float64
}

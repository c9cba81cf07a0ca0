package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса на пакетную генерацию слотов
// Если Advanced == nil, используется простой режим: один слот на каждый рабочий час
type Request struct {
	UserID  int64
	CourtID int64

	StartDate time.Time // Начало диапазона (включительно)
	EndDate   time.Time // Конец диапазона (включительно)

	// SlotDurationMinutes длительность слота в простом режиме
	// 0 означает значение по умолчанию (60 минут)
	SlotDurationMinutes int

	Advanced *AdvancedSpec
}

// AdvancedSpec расширенная спецификация генерации:
// выбор дней недели, произвольное время и шаг, раздельные цены будни/выходные
type AdvancedSpec struct {
	Weekdays            []time.Weekday
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int

	// CustomPricing включает раздельное ценообразование
	// Если выключено, цена слота не задаётся - при чтении используется цена корта
	CustomPricing bool
	WeekdayPrice  float64
	WeekendPrice  float64
}

// Response модель ответа с количеством созданных и пропущенных слотов
type Response struct {
	CourtID int64
	Created int // Реально созданные слоты
	Skipped int // Кандидаты, отброшенные из-за пересечений или дубликатов
}

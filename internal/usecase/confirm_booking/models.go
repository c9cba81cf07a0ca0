package confirm_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса подтверждения платежа
// Параметры бронирования приходят из notes платёжного заказа,
// целостность пары order/payment защищена HMAC подписью
type Request struct {
	OrderRef   string
	PaymentRef string
	Signature  string

	UserID     int64
	CourtID    int64
	SlotIDs    []int64
	TotalPrice float64 // Цена, зафиксированная при инициации
}

// Response модель ответа: созданные (или ранее созданные) бронирования
type Response struct {
	AlreadyProcessed bool // Повторная доставка callback'а
	Bookings         []BookingInfo
}

// BookingInfo созданное бронирование
type BookingInfo struct {
	ID         int64
	TimeSlotID int64
	CourtID    int64
	UserID     int64
	Status     string
	TotalPrice float64
	SlotDate   time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
}

package initiate_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// Request модель запроса на инициацию бронирования
type Request struct {
	UserID     int64
	FacilityID int64
	Date       time.Time
	StartTime  types.TimeString
	Hours      int
}

// Response модель ответа: созданный платёжный заказ и зафиксированное окно
// Слоты и итоговая цена фиксируются в notes заказа и при подтверждении
// не пересчитываются
type Response struct {
	OrderRef   string
	Amount     int64 // Сумма в минимальных единицах валюты
	Currency   string
	CourtID    int64
	CourtName  string
	SlotIDs    []int64
	TotalPrice float64
}

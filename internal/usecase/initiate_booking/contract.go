package initiate_booking

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/payments"
	"github.com/m04kA/SMC-CourtBookingService/internal/usecase/select_window"
)

// WindowSelector интерфейс подбора последовательного окна слотов
// Инициация брони повторяет подбор, чтобы зафиксировать актуальные слоты и цену
type WindowSelector interface {
	Execute(ctx context.Context, req *select_window.Request) (*select_window.Response, error)
}

// PaymentsClient интерфейс клиента платёжного шлюза
type PaymentsClient interface {
	CreateOrder(ctx context.Context, req *payments.CreateOrderRequest) (*payments.Order, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

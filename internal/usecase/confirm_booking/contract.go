package confirm_booking

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByPaymentRef получает бронирования, уже созданные этим платежом
	GetByPaymentRef(ctx context.Context, paymentRef string) ([]*domain.BookingWithSlot, error)
	// GetConfirmedBySlotIDs в транзакции блокирует строки через FOR UPDATE
	GetConfirmedBySlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
}

// PaymentsClient интерфейс клиента платёжного шлюза
type PaymentsClient interface {
	VerifySignature(orderRef, paymentRef, signature string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

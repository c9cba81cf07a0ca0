package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetByCourtAndDate получает слоты корта на дату, упорядоченные по времени начала
	GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.TimeSlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetConfirmedBySlotIDs получает подтвержденные бронирования для набора слотов
	GetConfirmedBySlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

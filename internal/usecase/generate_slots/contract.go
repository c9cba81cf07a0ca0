package generate_slots

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetByCourtAndRange получает существующие слоты корта за период
	GetByCourtAndRange(ctx context.Context, filter domain.SlotRangeFilter) ([]*domain.TimeSlot, error)
	// CreateBatchSkipDuplicates создает слоты пакетом, пропуская дубликаты по (court, date, start)
	CreateBatchSkipDuplicates(ctx context.Context, slots []*domain.TimeSlot) (int, error)
}

// VenueAuthClient интерфейс клиента авторизации VenueService
type VenueAuthClient interface {
	CanManage(ctx context.Context, userID, facilityID int64) (bool, error)
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

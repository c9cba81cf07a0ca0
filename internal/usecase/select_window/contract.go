package select_window

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueauth"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	// GetByFacility получает корты площадки в порядке создания
	GetByFacility(ctx context.Context, facilityID int64, onlyActive bool) ([]*domain.Court, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.TimeSlot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetConfirmedBySlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.Booking, error)
}

// VenueAuthClient интерфейс клиента VenueService
type VenueAuthClient interface {
	GetFacility(ctx context.Context, facilityID int64) (*venueauth.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

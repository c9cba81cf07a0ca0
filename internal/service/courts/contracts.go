package courts

import (
	"context"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueauth"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	Create(ctx context.Context, court *domain.Court) (*domain.Court, error)
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	GetByFacility(ctx context.Context, facilityID int64, onlyActive bool) ([]*domain.Court, error)
	Update(ctx context.Context, court *domain.Court) error
	SetActive(ctx context.Context, id int64, active bool) error
}

// VenueAuthClient интерфейс клиента VenueService
type VenueAuthClient interface {
	GetFacility(ctx context.Context, facilityID int64) (*venueauth.Facility, error)
	CanManage(ctx context.Context, userID, facilityID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

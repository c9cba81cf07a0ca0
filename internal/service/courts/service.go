package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueauth"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/courts/models"
)

// Service сервис для управления кортами площадки
type Service struct {
	courtRepo CourtRepository
	venueAuth VenueAuthClient
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, venueAuth VenueAuthClient, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		venueAuth: venueAuth,
		logger:    logger,
	}
}

// Create создает корт на площадке
// Доступно только менеджерам площадки
func (s *Service) Create(ctx context.Context, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("CreateCourt: facility=%d, name=%s by user=%d", req.FacilityID, req.Name, req.UserID)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateCourt: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.venueAuth.GetFacility(ctx, req.FacilityID); err != nil {
		if errors.Is(err, venueauth.ErrFacilityNotFound) {
			s.logger.Warn("CreateCourt: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("CreateCourt: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, req.FacilityID, req.UserID); err != nil {
		s.logger.Warn("CreateCourt: access denied for user=%d to facility=%d", req.UserID, req.FacilityID)
		return nil, err
	}

	sport, err := domain.ParseSportType(req.Sport)
	if err != nil {
		s.logger.Warn("CreateCourt: invalid sport=%s", req.Sport)
		return nil, fmt.Errorf("%w: invalid sport", ErrInvalidInput)
	}

	created, err := s.courtRepo.Create(ctx, &domain.Court{
		FacilityID:   req.FacilityID,
		Name:         req.Name,
		Sport:        sport,
		PricePerHour: req.PricePerHour,
		OpenHour:     req.OpenHour,
		CloseHour:    req.CloseHour,
		Active:       true,
	})
	if err != nil {
		s.logger.Error("CreateCourt: failed to create court: %v", err)
		return nil, fmt.Errorf("%w: failed to create court: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCourt: created court id=%d", created.ID)
	return models.FromDomainCourt(created), nil
}

// Update изменяет корт
// Деактивация через Active=false убирает корт из подбора окон,
// существующие бронирования при этом не трогаются
func (s *Service) Update(ctx context.Context, courtID int64, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	s.logger.Info("UpdateCourt: court=%d by user=%d", courtID, req.UserID)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("UpdateCourt: validation failed: %v", err)
		return nil, err
	}

	court, err := s.getCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	if err := s.checkManagerAccess(ctx, court.FacilityID, req.UserID); err != nil {
		s.logger.Warn("UpdateCourt: access denied for user=%d to facility=%d", req.UserID, court.FacilityID)
		return nil, err
	}

	if err := applyUpdate(court, req); err != nil {
		s.logger.Warn("UpdateCourt: %v", err)
		return nil, err
	}

	if err := s.courtRepo.Update(ctx, court); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		s.logger.Error("UpdateCourt: failed to update court=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: failed to update court: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCourt: updated court id=%d", courtID)
	return models.FromDomainCourt(court), nil
}

// List получает корты площадки
// Публичное чтение, порядок соответствует порядку перебора при подборе окна
func (s *Service) List(ctx context.Context, facilityID int64, onlyActive bool) (*models.CourtListResponse, error) {
	s.logger.Info("ListCourts: facility=%d, onlyActive=%v", facilityID, onlyActive)

	if facilityID <= 0 {
		return nil, fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	courts, err := s.courtRepo.GetByFacility(ctx, facilityID, onlyActive)
	if err != nil {
		s.logger.Error("ListCourts: repository error for facility=%d: %v", facilityID, err)
		return nil, fmt.Errorf("%w: ListCourts - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourtList(courts), nil
}

// Вспомогательные методы

func (s *Service) getCourt(ctx context.Context, courtID int64) (*domain.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("getCourt: court id=%d not found", courtID)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("getCourt: failed to get court id=%d: %v", courtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}
	return court, nil
}

// checkManagerAccess проверяет, что пользователь управляет площадкой
func (s *Service) checkManagerAccess(ctx context.Context, facilityID, userID int64) error {
	allowed, err := s.venueAuth.CanManage(ctx, userID, facilityID)
	if err != nil {
		s.logger.Error("checkManagerAccess: failed to check rights for user=%d, facility=%d: %v",
			userID, facilityID, err)
		return fmt.Errorf("%w: failed to check manage rights: %v", ErrInternal, err)
	}
	if !allowed {
		return ErrAccessDenied
	}
	return nil
}

// applyUpdate накладывает ненулевые поля запроса на корт
func applyUpdate(court *domain.Court, req *models.UpdateCourtRequest) error {
	if req.Name != nil {
		court.Name = *req.Name
	}
	if req.Sport != nil {
		sport, err := domain.ParseSportType(*req.Sport)
		if err != nil {
			return fmt.Errorf("%w: invalid sport", ErrInvalidInput)
		}
		court.Sport = sport
	}
	if req.PricePerHour != nil {
		court.PricePerHour = *req.PricePerHour
	}
	if req.OpenHour != nil {
		court.OpenHour = *req.OpenHour
	}
	if req.CloseHour != nil {
		court.CloseHour = *req.CloseHour
	}
	if req.Active != nil {
		court.Active = *req.Active
	}

	if court.OpenHour < 0 || court.CloseHour > 24 || court.OpenHour >= court.CloseHour {
		return fmt.Errorf("%w: invalid operating hours", ErrInvalidInput)
	}
	if court.PricePerHour <= 0 {
		return fmt.Errorf("%w: pricePerHour must be positive", ErrInvalidInput)
	}

	return nil
}

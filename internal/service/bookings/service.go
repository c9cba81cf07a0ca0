package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	venueAuth    VenueAuthClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	venueAuth VenueAuthClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		venueAuth:    venueAuth,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование либо бронирования площадки,
// которой он управляет
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу. Статус completed выводится из времени
// слота на чтении, поэтому фильтрация по статусу идёт после его вывода
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	if req.Status != nil {
		if _, err := models.ToDomainBookingStatus(*req.Status); err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, nil)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBookingList(bookings, s.timeProvider.Now())
	resp = filterByStatus(resp, req.Status)

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", resp.Total, req.UserID)
	return resp, nil
}

// GetFacilityBookings получает бронирования площадки с фильтрацией
// по корту, дате слота и статусу. Доступно только менеджерам площадки
func (s *Service) GetFacilityBookings(ctx context.Context, req *models.GetFacilityBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetFacilityBookings: facility=%d, user=%d", req.FacilityID, req.UserID)

	if err := s.checkManagerAccess(ctx, req.FacilityID, req.UserID); err != nil {
		s.logger.Warn("GetFacilityBookings: access denied for user=%d to facility=%d", req.UserID, req.FacilityID)
		return nil, err
	}

	if req.Status != nil {
		if _, err := models.ToDomainBookingStatus(*req.Status); err != nil {
			s.logger.Warn("GetFacilityBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
	}

	bookings, err := s.bookingRepo.GetByFacilityWithFilter(ctx, domain.FacilityBookingsFilter{
		FacilityID: req.FacilityID,
		CourtID:    req.CourtID,
		Date:       req.Date,
	})
	if err != nil {
		s.logger.Error("GetFacilityBookings: repository error for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: GetFacilityBookings - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBookingList(bookings, s.timeProvider.Now())
	resp = filterByStatus(resp, req.Status)

	s.logger.Info("GetFacilityBookings: fetched %d bookings for facility=%d", resp.Total, req.FacilityID)
	return resp, nil
}

// Cancel отменяет бронирование
// Игрок может отменить своё бронирование до начала слота,
// менеджер площадки - любое бронирование площадки в любой момент.
// Отмена возвращает слот в доступные через вывод доступности на чтении
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	now := s.timeProvider.Now()

	if booking.UserID == req.UserID {
		// Игрок отменяет своё бронирование - только до начала слота
		if !now.Before(booking.SlotStart(now.Location())) {
			s.logger.Warn("Cancel: booking id=%d slot already started", bookingID)
			return ErrCannotCancel
		}
	} else {
		court, err := s.courtRepo.GetByID(ctx, booking.CourtID)
		if err != nil {
			if errors.Is(err, courtRepo.ErrCourtNotFound) {
				s.logger.Error("Cancel: court id=%d not found for booking id=%d", booking.CourtID, bookingID)
				return fmt.Errorf("%w: court not found", ErrInternal)
			}
			s.logger.Error("Cancel: failed to get court id=%d: %v", booking.CourtID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if err := s.checkManagerAccess(ctx, court.FacilityID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Конкурентная отмена успела первой
			s.logger.Warn("Cancel: booking id=%d is no longer confirmed", bookingID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.BookingWithSlot, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	court, err := s.courtRepo.GetByID(ctx, booking.CourtID)
	if err != nil {
		s.logger.Error("checkUserAccess: failed to get court id=%d: %v", booking.CourtID, err)
		return ErrAccessDenied
	}

	if err := s.checkManagerAccess(ctx, court.FacilityID, userID); err != nil {
		return ErrAccessDenied
	}

	return nil
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

// filterByStatus оставляет бронирования с указанным эффективным статусом
func filterByStatus(resp *models.BookingListResponse, status *string) *models.BookingListResponse {
	if status == nil {
		return resp
	}

	filtered := make([]models.BookingResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		if b.Status == *status {
			filtered = append(filtered, b)
		}
	}

	return &models.BookingListResponse{Bookings: filtered, Total: len(filtered)}
}

package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	slotRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/slots/models"
)

// Service сервис для работы с одиночными слотами
type Service struct {
	slotRepo    SlotRepository
	courtRepo   CourtRepository
	bookingRepo BookingRepository
	venueAuth   VenueAuthClient
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	courtRepo CourtRepository,
	bookingRepo BookingRepository,
	venueAuth VenueAuthClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:    slotRepo,
		courtRepo:   courtRepo,
		bookingRepo: bookingRepo,
		venueAuth:   venueAuth,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает одиночный слот
// Проверка пересечений и вставка идут в одной сериализуемой транзакции
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateSlot: court=%d, date=%s, %s-%s by user=%d",
		req.CourtID, req.SlotDate.Format(domain.DateFormat), req.StartTime, req.EndTime, req.UserID)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateSlot: validation failed: %v", err)
		return nil, err
	}

	court, err := s.getCourt(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	if !court.ContainsInterval(req.StartTime, req.EndTime) {
		s.logger.Warn("CreateSlot: interval %s-%s is outside operating hours of court=%d",
			req.StartTime, req.EndTime, req.CourtID)
		return nil, fmt.Errorf("%w: slot is outside court operating hours", ErrInvalidInput)
	}

	if err := s.checkManagerAccess(ctx, court.FacilityID, req.UserID); err != nil {
		s.logger.Warn("CreateSlot: access denied for user=%d to facility=%d", req.UserID, court.FacilityID)
		return nil, err
	}

	var created *domain.TimeSlot

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := s.slotRepo.GetOverlapping(txCtx, req.CourtID, req.SlotDate, req.StartTime, req.EndTime, 0)
		if err != nil {
			s.logger.Error("CreateSlot: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			s.logger.Warn("CreateSlot: interval %s-%s overlaps slot id=%d",
				req.StartTime, req.EndTime, overlapping[0].ID)
			return ErrSlotOverlap
		}

		created, err = s.slotRepo.Create(txCtx, &domain.TimeSlot{
			CourtID:            req.CourtID,
			SlotDate:           req.SlotDate,
			StartTime:          req.StartTime,
			EndTime:            req.EndTime,
			PriceOverride:      req.PriceOverride,
			MaintenanceBlocked: req.MaintenanceBlocked,
			MaintenanceReason:  req.MaintenanceReason,
		})
		if err != nil {
			if errors.Is(err, slotRepo.ErrDuplicateSlot) {
				return ErrSlotOverlap
			}
			s.logger.Error("CreateSlot: failed to create slot: %v", err)
			return fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("CreateSlot: created slot id=%d", created.ID)
	return models.FromDomainSlot(created), nil
}

// Update изменяет слот
// Время и цена замораживаются подтверждённым бронированием,
// maintenance-поля редактируются всегда
func (s *Service) Update(ctx context.Context, slotID int64, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("UpdateSlot: slot=%d by user=%d", slotID, req.UserID)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("UpdateSlot: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.TimeSlot

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, court, err := s.getSlotWithCourt(txCtx, slotID)
		if err != nil {
			return err
		}

		if err := s.checkManagerAccess(txCtx, court.FacilityID, req.UserID); err != nil {
			s.logger.Warn("UpdateSlot: access denied for user=%d to facility=%d", req.UserID, court.FacilityID)
			return err
		}

		hasBooking, err := s.bookingRepo.HasConfirmedBySlotID(txCtx, slotID)
		if err != nil {
			s.logger.Error("UpdateSlot: failed to check bookings for slot=%d: %v", slotID, err)
			return fmt.Errorf("%w: failed to check bookings: %v", ErrInternal, err)
		}

		if hasBooking && req.ChangesTimesOrPrice() {
			s.logger.Warn("UpdateSlot: slot=%d is frozen by a confirmed booking", slotID)
			return ErrSlotFrozen
		}

		if hasBooking {
			// Изменяемы только maintenance-поля
			blocked := slot.MaintenanceBlocked
			if req.MaintenanceBlocked != nil {
				blocked = *req.MaintenanceBlocked
			}
			reason := slot.MaintenanceReason
			if req.MaintenanceReason != nil {
				reason = req.MaintenanceReason
			}

			if err := s.slotRepo.UpdateMaintenance(txCtx, slotID, blocked, reason); err != nil {
				s.logger.Error("UpdateSlot: failed to update maintenance for slot=%d: %v", slotID, err)
				return fmt.Errorf("%w: failed to update maintenance: %v", ErrInternal, err)
			}

			slot.MaintenanceBlocked = blocked
			slot.MaintenanceReason = reason
			updated = slot
			return nil
		}

		applyUpdate(slot, req)

		if !slot.StartTime.IsBefore(slot.EndTime) {
			return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
		}
		if !court.ContainsInterval(slot.StartTime, slot.EndTime) {
			return fmt.Errorf("%w: slot is outside court operating hours", ErrInvalidInput)
		}

		// Проверка пересечений исключает сам редактируемый слот
		overlapping, err := s.slotRepo.GetOverlapping(txCtx, slot.CourtID, slot.SlotDate, slot.StartTime, slot.EndTime, slot.ID)
		if err != nil {
			s.logger.Error("UpdateSlot: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			s.logger.Warn("UpdateSlot: interval %s-%s overlaps slot id=%d",
				slot.StartTime, slot.EndTime, overlapping[0].ID)
			return ErrSlotOverlap
		}

		if err := s.slotRepo.Update(txCtx, slot); err != nil {
			if errors.Is(err, slotRepo.ErrDuplicateSlot) {
				return ErrSlotOverlap
			}
			s.logger.Error("UpdateSlot: failed to update slot=%d: %v", slotID, err)
			return fmt.Errorf("%w: failed to update slot: %v", ErrInternal, err)
		}

		updated = slot
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateSlot: updated slot id=%d", slotID)
	return models.FromDomainSlot(updated), nil
}

// Delete удаляет слот
// Слот с подтверждённым бронированием удалить нельзя
func (s *Service) Delete(ctx context.Context, slotID int64, userID int64) error {
	s.logger.Info("DeleteSlot: slot=%d by user=%d", slotID, userID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		_, court, err := s.getSlotWithCourt(txCtx, slotID)
		if err != nil {
			return err
		}

		if err := s.checkManagerAccess(txCtx, court.FacilityID, userID); err != nil {
			s.logger.Warn("DeleteSlot: access denied for user=%d to facility=%d", userID, court.FacilityID)
			return err
		}

		hasBooking, err := s.bookingRepo.HasConfirmedBySlotID(txCtx, slotID)
		if err != nil {
			s.logger.Error("DeleteSlot: failed to check bookings for slot=%d: %v", slotID, err)
			return fmt.Errorf("%w: failed to check bookings: %v", ErrInternal, err)
		}
		if hasBooking {
			s.logger.Warn("DeleteSlot: slot=%d has a confirmed booking", slotID)
			return ErrSlotHasBooking
		}

		if err := s.slotRepo.Delete(txCtx, slotID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			s.logger.Error("DeleteSlot: failed to delete slot=%d: %v", slotID, err)
			return fmt.Errorf("%w: failed to delete slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("DeleteSlot: deleted slot id=%d", slotID)
	return nil
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

func (s *Service) getSlotWithCourt(ctx context.Context, slotID int64) (*domain.TimeSlot, *domain.Court, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("getSlotWithCourt: slot id=%d not found", slotID)
			return nil, nil, ErrSlotNotFound
		}
		s.logger.Error("getSlotWithCourt: failed to get slot id=%d: %v", slotID, err)
		return nil, nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	court, err := s.getCourt(ctx, slot.CourtID)
	if err != nil {
		return nil, nil, err
	}

	return slot, court, nil
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

// applyUpdate накладывает ненулевые поля запроса на слот
func applyUpdate(slot *domain.TimeSlot, req *models.UpdateSlotRequest) {
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if req.ClearPriceOverride {
		slot.PriceOverride = nil
	} else if req.PriceOverride != nil {
		slot.PriceOverride = req.PriceOverride
	}
	if req.MaintenanceBlocked != nil {
		slot.MaintenanceBlocked = *req.MaintenanceBlocked
	}
	if req.MaintenanceReason != nil {
		slot.MaintenanceReason = req.MaintenanceReason
	}
}

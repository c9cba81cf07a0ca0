package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
)

// UseCase use case для получения слотов корта с доступностью
type UseCase struct {
	courtRepo   CourtRepository
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:   courtRepo,
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов
// Доступность рассчитывается на чтении и нигде не хранится
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	// 3. Получаем материализованные слоты на дату
	slots, err := uc.slotRepo.GetByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	// 4. Получаем подтвержденные бронирования по слотам
	var bookings []*domain.Booking
	if len(slots) > 0 {
		slotIDs := make([]int64, 0, len(slots))
		for _, s := range slots {
			slotIDs = append(slotIDs, s.ID)
		}

		bookings, err = uc.bookingRepo.GetConfirmedBySlotIDs(ctx, slotIDs)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get confirmed bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get confirmed bookings: %v", ErrInternal, err)
		}
	}

	// 5. Собираем расписание дня
	daySlots := buildDaySchedule(court, slots, bookings)

	uc.logger.Info("GetAvailableSlots: court=%d, date=%s, slots=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), len(daySlots))

	return &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Slots:   daySlots,
	}, nil
}

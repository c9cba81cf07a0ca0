package select_window

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueauth"
)

// UseCase use case подбора последовательного окна слотов по площадке
type UseCase struct {
	courtRepo   CourtRepository
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	venueAuth   VenueAuthClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	venueAuth VenueAuthClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:   courtRepo,
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		venueAuth:   venueAuth,
		logger:      logger,
	}
}

// Execute выполняет use case подбора окна
// Корты перебираются в порядке создания, побеждает первый корт
// с нужным числом последовательных доступных слотов от стартового времени.
// Окно целиком или ничего: обслуживание, бронь или разрыв отклоняют корт
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectWindow: facility=%d, date=%s, start=%s, hours=%d",
		req.FacilityID, req.Date.Format(domain.DateFormat), req.StartTime, req.Hours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectWindow: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование площадки
	if _, err := uc.venueAuth.GetFacility(ctx, req.FacilityID); err != nil {
		if errors.Is(err, venueauth.ErrFacilityNotFound) {
			uc.logger.Warn("SelectWindow: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("SelectWindow: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Получаем активные корты площадки в порядке создания
	courts, err := uc.courtRepo.GetByFacility(ctx, req.FacilityID, true)
	if err != nil {
		uc.logger.Error("SelectWindow: failed to get courts: %v", err)
		return nil, fmt.Errorf("%w: failed to get courts: %v", ErrInternal, err)
	}

	// 4. Перебираем корты, первое найденное окно побеждает
	for _, court := range courts {
		selection, err := uc.tryCourt(ctx, court, req)
		if err != nil {
			return nil, err
		}
		if selection == nil {
			continue
		}

		uc.logger.Info("SelectWindow: facility=%d, selected court=%d, slots=%d, total=%.2f",
			req.FacilityID, court.ID, len(selection.SlotIDs), selection.TotalPrice)

		return buildResponse(court, selection), nil
	}

	uc.logger.Info("SelectWindow: facility=%d, no window of %d slots from %s",
		req.FacilityID, req.Hours, req.StartTime)

	return &Response{Available: false, Slots: []WindowSlot{}}, nil
}

// tryCourt ищет окно на одном корте, nil без ошибки означает "окна нет"
func (uc *UseCase) tryCourt(ctx context.Context, court *domain.Court, req *Request) (*domain.WindowSelection, error) {
	slots, err := uc.slotRepo.GetByCourtAndDate(ctx, court.ID, req.Date)
	if err != nil {
		uc.logger.Error("SelectWindow: failed to get slots for court=%d: %v", court.ID, err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	if len(slots) == 0 {
		return nil, nil
	}

	slotIDs := make([]int64, 0, len(slots))
	for _, s := range slots {
		slotIDs = append(slotIDs, s.ID)
	}

	bookings, err := uc.bookingRepo.GetConfirmedBySlotIDs(ctx, slotIDs)
	if err != nil {
		uc.logger.Error("SelectWindow: failed to get confirmed bookings for court=%d: %v", court.ID, err)
		return nil, fmt.Errorf("%w: failed to get confirmed bookings: %v", ErrInternal, err)
	}

	selection, ok := domain.SelectConsecutiveWindow(slots, bookings, req.StartTime, req.Hours, court.PricePerHour)
	if !ok {
		return nil, nil
	}

	return selection, nil
}

func buildResponse(court *domain.Court, selection *domain.WindowSelection) *Response {
	windowSlots := make([]WindowSlot, 0, len(selection.Slots))
	for _, s := range selection.Slots {
		windowSlots = append(windowSlots, WindowSlot{
			ID:        s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Price:     s.EffectivePrice(court.PricePerHour),
		})
	}

	return &Response{
		Available:  true,
		CourtID:    court.ID,
		CourtName:  court.Name,
		SlotIDs:    selection.SlotIDs,
		Slots:      windowSlots,
		TotalPrice: selection.TotalPrice,
	}
}

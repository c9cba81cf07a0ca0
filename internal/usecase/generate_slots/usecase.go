package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
)

// UseCase use case для пакетной генерации слотов корта
type UseCase struct {
	courtRepo CourtRepository
	slotRepo  SlotRepository
	venueAuth VenueAuthClient
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	slotRepo SlotRepository,
	venueAuth VenueAuthClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo: courtRepo,
		slotRepo:  slotRepo,
		venueAuth: venueAuth,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case генерации слотов
// Чтение существующих слотов и запись новых идут в одной сериализуемой транзакции,
// чтобы конкурентная генерация не породила пересекающиеся слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: user=%d, court=%d, range=%s..%s",
		req.UserID, req.CourtID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GenerateSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.Active {
		uc.logger.Warn("GenerateSlots: court id=%d is inactive", req.CourtID)
		return nil, ErrCourtInactive
	}

	// 3. Проверяем права управления площадкой
	allowed, err := uc.venueAuth.CanManage(ctx, req.UserID, court.FacilityID)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to check manage rights for user=%d, facility=%d: %v",
			req.UserID, court.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to check manage rights: %v", ErrInternal, err)
	}
	if !allowed {
		uc.logger.Warn("GenerateSlots: user=%d cannot manage facility=%d", req.UserID, court.FacilityID)
		return nil, ErrAccessDenied
	}

	// 4. Генерируем кандидатов
	var candidates []*domain.TimeSlot
	if req.Advanced != nil {
		if err := validateCourtWindow(court, req.Advanced); err != nil {
			uc.logger.Warn("GenerateSlots: advanced window validation failed: %v", err)
			return nil, err
		}
		candidates, err = generateAdvancedCandidates(court, req.StartDate, req.EndDate, req.Advanced)
	} else {
		duration := req.SlotDurationMinutes
		if duration == 0 {
			duration = domain.DefaultSlotDurationMinutes
		}
		candidates, err = generateSimpleCandidates(court, req.StartDate, req.EndDate, duration)
	}
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to build candidates: %v", err)
		return nil, fmt.Errorf("%w: failed to build candidates: %v", ErrInternal, err)
	}

	if len(candidates) == 0 {
		uc.logger.Warn("GenerateSlots: no candidates for court=%d in range", req.CourtID)
		return nil, ErrNoNewSlots
	}

	var created int

	// 5. Фильтрация пересечений и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.slotRepo.GetByCourtAndRange(txCtx, domain.SlotRangeFilter{
			CourtID:   req.CourtID,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})
		if err != nil {
			uc.logger.Error("GenerateSlots: failed to get existing slots: %v", err)
			return fmt.Errorf("%w: failed to get existing slots: %v", ErrInternal, err)
		}

		// Пересекающийся кандидат отбрасывается целиком, существующие слоты не трогаем
		fresh := filterAgainstExisting(candidates, existing)
		fresh = dropInternalOverlaps(fresh)

		if len(fresh) == 0 {
			uc.logger.Warn("GenerateSlots: all %d candidates overlap existing slots", len(candidates))
			return ErrNoNewSlots
		}

		created, err = uc.slotRepo.CreateBatchSkipDuplicates(txCtx, fresh)
		if err != nil {
			uc.logger.Error("GenerateSlots: failed to insert slots: %v", err)
			return fmt.Errorf("%w: failed to insert slots: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if created == 0 {
		uc.logger.Warn("GenerateSlots: insert created no rows for court=%d", req.CourtID)
		return nil, ErrNoNewSlots
	}

	uc.logger.Info("GenerateSlots: court=%d, created=%d, skipped=%d",
		req.CourtID, created, len(candidates)-created)

	return &Response{
		CourtID: req.CourtID,
		Created: created,
		Skipped: len(candidates) - created,
	}, nil
}

package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/payments"
)

// UseCase use case подтверждения платежа и записи бронирований
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	payments    PaymentsClient
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	paymentsClient PaymentsClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		payments:    paymentsClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case подтверждения платежа.
// На каждый слот окна пишется одно бронирование, все в одной сериализуемой
// транзакции: конфликт на любом слоте откатывает запись целиком.
// Повторная доставка callback'а с тем же paymentRef возвращает уже
// созданные бронирования без дублей - уникальные ключи хранилища
// являются последним словом при гонке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: order=%s, payment=%s, user=%d, slots=%d",
		req.OrderRef, req.PaymentRef, req.UserID, len(req.SlotIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем HMAC подпись callback'а
	if err := uc.payments.VerifySignature(req.OrderRef, req.PaymentRef, req.Signature); err != nil {
		if errors.Is(err, payments.ErrSignatureMismatch) {
			uc.logger.Warn("ConfirmBooking: signature mismatch for order=%s", req.OrderRef)
			return nil, ErrSignatureMismatch
		}
		uc.logger.Error("ConfirmBooking: signature verification failed: %v", err)
		return nil, fmt.Errorf("%w: signature verification failed: %v", ErrInternal, err)
	}

	// 3. Идемпотентность: платеж мог быть обработан раньше
	existing, err := uc.bookingRepo.GetByPaymentRef(ctx, req.PaymentRef)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to check payment=%s: %v", req.PaymentRef, err)
		return nil, fmt.Errorf("%w: failed to check existing bookings: %v", ErrInternal, err)
	}
	if len(existing) > 0 {
		uc.logger.Info("ConfirmBooking: payment=%s already processed, %d bookings", req.PaymentRef, len(existing))
		return alreadyProcessedResponse(existing), nil
	}

	var created []*domain.Booking
	slotsByID := make(map[int64]*domain.TimeSlot, len(req.SlotIDs))

	// 4. Запись бронирований в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Загружаем слоты заказа
		for _, slotID := range req.SlotIDs {
			slot, err := uc.slotRepo.GetByID(txCtx, slotID)
			if err != nil {
				if errors.Is(err, slotRepo.ErrSlotNotFound) {
					uc.logger.Warn("ConfirmBooking: slot id=%d not found", slotID)
					return ErrSlotNotFound
				}
				uc.logger.Error("ConfirmBooking: failed to get slot id=%d: %v", slotID, err)
				return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
			}
			slotsByID[slotID] = slot
		}

		// 4.2. Перечитываем подтвержденные бронирования с блокировкой (FOR UPDATE)
		conflicting, err := uc.bookingRepo.GetConfirmedBySlotIDs(txCtx, req.SlotIDs)
		if err != nil {
			uc.logger.Error("ConfirmBooking: failed to recheck slots: %v", err)
			return fmt.Errorf("%w: failed to recheck slots: %v", ErrInternal, err)
		}
		if len(conflicting) > 0 {
			uc.logger.Warn("ConfirmBooking: slot id=%d already booked", conflicting[0].TimeSlotID)
			return ErrSlotConflict
		}

		// 4.3. Пишем бронирования, деля зафиксированную цену по слотам
		shares := splitPrice(req.TotalPrice, len(req.SlotIDs))

		created = make([]*domain.Booking, 0, len(req.SlotIDs))
		for i, slotID := range req.SlotIDs {
			booking, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
				TimeSlotID:      slotID,
				CourtID:         req.CourtID,
				UserID:          req.UserID,
				Status:          domain.StatusConfirmed,
				TotalPrice:      shares[i],
				PaymentRef:      req.PaymentRef,
				PaymentOrderRef: req.OrderRef,
			})
			if err != nil {
				return err
			}
			created = append(created, booking)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrSlotAlreadyBooked):
			// Конкурентная бронь успела первой - уникальный индекс решает гонку
			uc.logger.Warn("ConfirmBooking: lost booking race for payment=%s", req.PaymentRef)
			return nil, ErrSlotConflict
		case errors.Is(err, bookingRepo.ErrDuplicatePayment):
			// Конкурентная доставка того же callback'а успела первой
			return uc.resolveDuplicate(ctx, req.PaymentRef)
		case errors.Is(err, ErrSlotNotFound), errors.Is(err, ErrSlotConflict),
			errors.Is(err, ErrInternal):
			return nil, err
		default:
			uc.logger.Error("ConfirmBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("ConfirmBooking: payment=%s, created %d bookings", req.PaymentRef, len(created))

	return createdResponse(created, slotsByID), nil
}

// resolveDuplicate возвращает бронирования, созданные конкурентной доставкой callback'а
func (uc *UseCase) resolveDuplicate(ctx context.Context, paymentRef string) (*Response, error) {
	existing, err := uc.bookingRepo.GetByPaymentRef(ctx, paymentRef)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to load bookings for duplicate payment=%s: %v", paymentRef, err)
		return nil, fmt.Errorf("%w: failed to load existing bookings: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: duplicate delivery for payment=%s, %d bookings", paymentRef, len(existing))
	return alreadyProcessedResponse(existing), nil
}

func createdResponse(bookings []*domain.Booking, slots map[int64]*domain.TimeSlot) *Response {
	infos := make([]BookingInfo, 0, len(bookings))
	for _, b := range bookings {
		info := BookingInfo{
			ID:         b.ID,
			TimeSlotID: b.TimeSlotID,
			CourtID:    b.CourtID,
			UserID:     b.UserID,
			Status:     string(b.Status),
			TotalPrice: b.TotalPrice,
		}
		if slot, ok := slots[b.TimeSlotID]; ok {
			info.SlotDate = slot.SlotDate
			info.StartTime = slot.StartTime
			info.EndTime = slot.EndTime
		}
		infos = append(infos, info)
	}

	return &Response{Bookings: infos}
}

func alreadyProcessedResponse(bookings []*domain.BookingWithSlot) *Response {
	infos := make([]BookingInfo, 0, len(bookings))
	for _, b := range bookings {
		infos = append(infos, BookingInfo{
			ID:         b.ID,
			TimeSlotID: b.TimeSlotID,
			CourtID:    b.CourtID,
			UserID:     b.UserID,
			Status:     string(b.Status),
			TotalPrice: b.TotalPrice,
			SlotDate:   b.SlotDate,
			StartTime:  b.StartTime,
			EndTime:    b.EndTime,
		})
	}

	return &Response{AlreadyProcessed: true, Bookings: infos}
}

package initiate_booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/payments"
	"github.com/m04kA/SMC-CourtBookingService/internal/usecase/select_window"
)

// UseCase use case инициации бронирования
type UseCase struct {
	selector WindowSelector
	payments PaymentsClient
	currency string
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(selector WindowSelector, paymentsClient PaymentsClient, currency string, logger Logger) *UseCase {
	return &UseCase{
		selector: selector,
		payments: paymentsClient,
		currency: currency,
		logger:   logger,
	}
}

// Execute выполняет use case инициации бронирования:
// повторяет подбор окна и создаёт платёжный заказ на его полную стоимость.
// Слоты и цена окна фиксируются в notes заказа - подтверждение платежа
// использует их как есть, без пересчёта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitiateBooking: user=%d, facility=%d, date=%s, start=%s, hours=%d",
		req.UserID, req.FacilityID, req.Date.Format(domain.DateFormat), req.StartTime, req.Hours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("InitiateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Повторяем подбор окна по актуальному состоянию
	selection, err := uc.selector.Execute(ctx, &select_window.Request{
		FacilityID: req.FacilityID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Hours:      req.Hours,
	})
	if err != nil {
		switch {
		case errors.Is(err, select_window.ErrFacilityNotFound):
			uc.logger.Warn("InitiateBooking: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		case errors.Is(err, select_window.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("InitiateBooking: window selection failed: %v", err)
			return nil, fmt.Errorf("%w: window selection failed: %v", ErrInternal, err)
		}
	}

	if !selection.Available {
		uc.logger.Warn("InitiateBooking: window %s+%dh on facility=%d is not available",
			req.StartTime, req.Hours, req.FacilityID)
		return nil, ErrWindowUnavailable
	}

	// 3. Создаём платёжный заказ на полную стоимость окна
	order, err := uc.payments.CreateOrder(ctx, &payments.CreateOrderRequest{
		Amount:   toMinorUnits(selection.TotalPrice),
		Currency: uc.currency,
		Notes:    orderNotes(req, selection),
	})
	if err != nil {
		uc.logger.Error("InitiateBooking: failed to create payment order: %v", err)
		return nil, fmt.Errorf("%w: failed to create payment order: %v", ErrInternal, err)
	}

	uc.logger.Info("InitiateBooking: order=%s, court=%d, slots=%d, total=%.2f",
		order.ID, selection.CourtID, len(selection.SlotIDs), selection.TotalPrice)

	return &Response{
		OrderRef:   order.ID,
		Amount:     order.Amount,
		Currency:   order.Currency,
		CourtID:    selection.CourtID,
		CourtName:  selection.CourtName,
		SlotIDs:    selection.SlotIDs,
		TotalPrice: selection.TotalPrice,
	}, nil
}

// orderNotes собирает notes заказа, из которых платёжный callback
// восстанавливает параметры бронирования
func orderNotes(req *Request, selection *select_window.Response) map[string]string {
	ids := make([]string, 0, len(selection.SlotIDs))
	for _, id := range selection.SlotIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	return map[string]string{
		"user_id":     strconv.FormatInt(req.UserID, 10),
		"court_id":    strconv.FormatInt(selection.CourtID, 10),
		"slot_ids":    strings.Join(ids, ","),
		"total_price": strconv.FormatFloat(selection.TotalPrice, 'f', 2, 64),
		"slot_date":   req.Date.Format(domain.DateFormat),
	}
}

// toMinorUnits переводит сумму в минимальные единицы валюты
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

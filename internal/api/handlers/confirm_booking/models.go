package confirm_booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	confirmBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest HTTP request model - callback платёжного шлюза
// Поле notes эхом возвращает параметры бронирования, зафиксированные
// при создании заказа
type ConfirmBookingRequest struct {
	OrderRef   string            `json:"orderRef"`
	PaymentRef string            `json:"paymentRef"`
	Signature  string            `json:"signature"`
	Notes      map[string]string `json:"notes"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	AlreadyProcessed bool          `json:"alreadyProcessed"`
	Bookings         []BookingInfo `json:"bookings"`
}

// BookingInfo созданное бронирование
type BookingInfo struct {
	ID         int64   `json:"id"`
	TimeSlotID int64   `json:"timeSlotId"`
	CourtID    int64   `json:"courtId"`
	UserID     int64   `json:"userId"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
	SlotDate   string  `json:"slotDate"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
}

// ToUseCaseRequest конвертирует callback в модель use case,
// разбирая параметры бронирования из notes заказа
func (r *ConfirmBookingRequest) ToUseCaseRequest() (*confirmBooking.Request, error) {
	userID, err := parseNoteInt64(r.Notes, "user_id")
	if err != nil {
		return nil, err
	}

	courtID, err := parseNoteInt64(r.Notes, "court_id")
	if err != nil {
		return nil, err
	}

	slotIDs, err := parseNoteSlotIDs(r.Notes)
	if err != nil {
		return nil, err
	}

	totalPrice, err := parseNoteFloat64(r.Notes, "total_price")
	if err != nil {
		return nil, err
	}

	return &confirmBooking.Request{
		OrderRef:   r.OrderRef,
		PaymentRef: r.PaymentRef,
		Signature:  r.Signature,
		UserID:     userID,
		CourtID:    courtID,
		SlotIDs:    slotIDs,
		TotalPrice: totalPrice,
	}, nil
}

func parseNoteInt64(notes map[string]string, key string) (int64, error) {
	raw, ok := notes[key]
	if !ok {
		return 0, fmt.Errorf("missing note %q", key)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note %q: %v", key, err)
	}

	return value, nil
}

func parseNoteFloat64(notes map[string]string, key string) (float64, error) {
	raw, ok := notes[key]
	if !ok {
		return 0, fmt.Errorf("missing note %q", key)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note %q: %v", key, err)
	}

	return value, nil
}

func parseNoteSlotIDs(notes map[string]string) ([]int64, error) {
	raw, ok := notes["slot_ids"]
	if !ok {
		return nil, fmt.Errorf("missing note %q", "slot_ids")
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid note %q: %v", "slot_ids", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	bookings := make([]BookingInfo, len(resp.Bookings))
	for i, b := range resp.Bookings {
		bookings[i] = BookingInfo{
			ID:         b.ID,
			TimeSlotID: b.TimeSlotID,
			CourtID:    b.CourtID,
			UserID:     b.UserID,
			Status:     b.Status,
			TotalPrice: b.TotalPrice,
			SlotDate:   b.SlotDate.Format(domain.DateFormat),
			StartTime:  b.StartTime.String(),
			EndTime:    b.EndTime.String(),
		}
	}

	return &ConfirmBookingResponse{
		AlreadyProcessed: resp.AlreadyProcessed,
		Bookings:         bookings,
	}
}

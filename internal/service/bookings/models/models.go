package models

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetFacilityBookingsRequest запрос на получение бронирований площадки
type GetFacilityBookingsRequest struct {
	UserID     int64      `json:"userId"`
	FacilityID int64      `json:"facilityId"`
	CourtID    *int64     `json:"courtId,omitempty"` // Фильтр по корту (опционально)
	Date       *time.Time `json:"date,omitempty"`    // Фильтр по дате слота (опционально)
	Status     *string    `json:"status,omitempty"`  // Фильтр по статусу (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования
// Status - эффективный статус: подтвержденная бронь прошедшего слота
// отдаётся как completed
type BookingResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	CourtID    int64   `json:"courtId"`
	TimeSlotID int64   `json:"timeSlotId"`
	SlotDate   string  `json:"slotDate"`  // "2026-09-01"
	StartTime  string  `json:"startTime"` // "10:00"
	EndTime    string  `json:"endTime"`   // "11:00"
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`

	PaymentRef      string `json:"paymentRef"`
	PaymentOrderRef string `json:"paymentOrderRef"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain бронирование в response,
// выводя эффективный статус на момент now
func FromDomainBooking(b *domain.BookingWithSlot, now time.Time) *BookingResponse {
	resp := &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		CourtID:         b.CourtID,
		TimeSlotID:      b.TimeSlotID,
		SlotDate:        b.SlotDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		Status:          string(b.EffectiveStatus(b.SlotEnd(now.Location()), now)),
		TotalPrice:      b.TotalPrice,
		PaymentRef:      b.PaymentRef,
		PaymentOrderRef: b.PaymentOrderRef,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	resp.CancellationReason = b.CancellationReason
	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain бронирований в response
func FromDomainBookingList(bookings []*domain.BookingWithSlot, now time.Time) *BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, *FromDomainBooking(b, now))
	}

	return &BookingListResponse{
		Bookings: items,
		Total:    len(items),
	}
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	return domain.ParseBookingStatus(status)
}

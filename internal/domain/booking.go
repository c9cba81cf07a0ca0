package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// AllBookingStatuses список всех статусов бронирования
var AllBookingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// ParseBookingStatus парсит строку в BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	for _, status := range AllBookingStatuses {
		if s == string(status) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown booking status: %q", s)
}

// Booking represents a confirmed reservation of exactly one time slot
type Booking struct {
	ID         int64
	TimeSlotID int64
	CourtID    int64
	UserID     int64
	Status     BookingStatus

	// TotalPrice цена, зафиксированная в момент выбора слота
	// Последующие изменения цен слота или корта на неё не влияют
	TotalPrice float64

	// PaymentRef идентификатор платежа в платёжном шлюзе
	// Уникален в паре со слотом - защита от повторной доставки callback
	PaymentRef      string
	PaymentOrderRef string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking currently holds its slot
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// EffectiveStatus derives the read-time status: a confirmed booking whose
// slot has already ended is reported as completed. The stored status is not
// rewritten - availability derivation only ever tests for confirmed.
func (b *Booking) EffectiveStatus(slotEnd time.Time, now time.Time) BookingStatus {
	if b.Status == StatusConfirmed && !slotEnd.After(now) {
		return StatusCompleted
	}
	return b.Status
}

// BookingWithSlot бронирование вместе с временем слота
// Используется в read-путях, где статус COMPLETED выводится из времени слота
type BookingWithSlot struct {
	Booking
	SlotDate  time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// SlotEnd returns the end of the booked slot as an instant
func (b *BookingWithSlot) SlotEnd(loc *time.Location) time.Time {
	return combineDateTime(b.SlotDate, b.EndTime, loc)
}

// SlotStart returns the start of the booked slot as an instant
func (b *BookingWithSlot) SlotStart(loc *time.Location) time.Time {
	return combineDateTime(b.SlotDate, b.StartTime, loc)
}

// FacilityBookingsFilter фильтр для получения бронирований площадки
type FacilityBookingsFilter struct {
	FacilityID int64          // Обязательный параметр
	CourtID    *int64         // Фильтр по корту (опционально)
	Date       *time.Time     // Фильтр по дате слота (опционально)
	Status     *BookingStatus // Фильтр по статусу (опционально)
}

package generate_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	generateSlots "github.com/m04kA/SMC-CourtBookingService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	StartDate           string               `json:"startDate"` // "2026-09-01"
	EndDate             string               `json:"endDate"`   // "2026-09-07"
	SlotDurationMinutes int                  `json:"slotDurationMinutes,omitempty"`
	Advanced            *AdvancedSpecRequest `json:"advanced,omitempty"`
}

// AdvancedSpecRequest расширенная спецификация генерации
type AdvancedSpecRequest struct {
	Weekdays            []int   `json:"weekdays"`  // 0 = воскресенье ... 6 = суббота
	StartTime           string  `json:"startTime"` // "08:00"
	EndTime             string  `json:"endTime"`   // "22:00"
	SlotDurationMinutes int     `json:"slotDurationMinutes,omitempty"`
	CustomPricing       bool    `json:"customPricing,omitempty"`
	WeekdayPrice        float64 `json:"weekdayPrice,omitempty"`
	WeekendPrice        float64 `json:"weekendPrice,omitempty"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	CourtID int64 `json:"courtId"`
	Created int   `json:"created"`
	Skipped int   `json:"skipped"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest(userID, courtID int64) (*generateSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	req := &generateSlots.Request{
		UserID:              userID,
		CourtID:             courtID,
		StartDate:           startDate,
		EndDate:             endDate,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}

	if r.Advanced != nil {
		advanced, err := r.Advanced.toUseCaseSpec()
		if err != nil {
			return nil, err
		}
		req.Advanced = advanced
	}

	return req, nil
}

func (a *AdvancedSpecRequest) toUseCaseSpec() (*generateSlots.AdvancedSpec, error) {
	startTime, err := types.NewTimeStringFromString(a.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(a.EndTime)
	if err != nil {
		return nil, err
	}

	weekdays := make([]time.Weekday, 0, len(a.Weekdays))
	for _, d := range a.Weekdays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid weekday: %d", d)
		}
		weekdays = append(weekdays, time.Weekday(d))
	}

	return &generateSlots.AdvancedSpec{
		Weekdays:            weekdays,
		StartTime:           startTime,
		EndTime:             endTime,
		SlotDurationMinutes: a.SlotDurationMinutes,
		CustomPricing:       a.CustomPricing,
		WeekdayPrice:        a.WeekdayPrice,
		WeekendPrice:        a.WeekendPrice,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		CourtID: resp.CourtID,
		Created: resp.Created,
		Skipped: resp.Skipped,
	}
}

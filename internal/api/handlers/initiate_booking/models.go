package initiate_booking

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	initiateBooking "github.com/m04kA/SMC-CourtBookingService/internal/usecase/initiate_booking"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// InitiateBookingRequest HTTP request model
type InitiateBookingRequest struct {
	FacilityID int64  `json:"facilityId"`
	Date       string `json:"date"`      // "2026-09-01"
	StartTime  string `json:"startTime"` // "10:00"
	Hours      int    `json:"hours"`
}

// InitiateBookingResponse HTTP response model
type InitiateBookingResponse struct {
	OrderRef   string  `json:"orderRef"`
	Amount     int64   `json:"amount"` // Минимальные единицы валюты
	Currency   string  `json:"currency"`
	CourtID    int64   `json:"courtId"`
	CourtName  string  `json:"courtName"`
	SlotIDs    []int64 `json:"slotIds"`
	TotalPrice float64 `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *InitiateBookingRequest) ToUseCaseRequest(userID int64) (*initiateBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &initiateBooking.Request{
		UserID:     userID,
		FacilityID: r.FacilityID,
		Date:       date,
		StartTime:  startTime,
		Hours:      r.Hours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *initiateBooking.Response) *InitiateBookingResponse {
	return &InitiateBookingResponse{
		OrderRef:   resp.OrderRef,
		Amount:     resp.Amount,
		Currency:   resp.Currency,
		CourtID:    resp.CourtID,
		CourtName:  resp.CourtName,
		SlotIDs:    resp.SlotIDs,
		TotalPrice: resp.TotalPrice,
	}
}

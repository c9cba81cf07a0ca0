package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_available_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	CourtID int64     `json:"courtId"`
	Date    string    `json:"date"`
	Slots   []DaySlot `json:"slots"`
}

// DaySlot слот дня с доступностью
// ID == null для нематериализованных рабочих часов
type DaySlot struct {
	ID                 *int64  `json:"id"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Price              float64 `json:"price"`
	Available          bool    `json:"available"`
	MaintenanceBlocked bool    `json:"maintenanceBlocked"`
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(courtID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CourtID: courtID,
		Date:    date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *DaySlotsResponse {
	slots := make([]DaySlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = DaySlot{
			ID:                 slot.ID,
			StartTime:          slot.StartTime.String(),
			EndTime:            slot.EndTime.String(),
			Price:              slot.Price,
			Available:          slot.Available,
			MaintenanceBlocked: slot.MaintenanceBlocked,
		}
	}

	return &DaySlotsResponse{
		CourtID: resp.CourtID,
		Date:    resp.Date.Format(domain.DateFormat),
		Slots:   slots,
	}
}

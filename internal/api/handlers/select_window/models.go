package select_window

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	selectWindow "github.com/m04kA/SMC-CourtBookingService/internal/usecase/select_window"
	"github.com/m04kA/SMC-CourtBookingService/pkg/types"
)

// WindowResponse HTTP response model
// available == false означает, что ни на одном корте площадки окно не собралось
type WindowResponse struct {
	Available  bool         `json:"available"`
	CourtID    int64        `json:"courtId,omitempty"`
	CourtName  string       `json:"courtName,omitempty"`
	SlotIDs    []int64      `json:"slotIds,omitempty"`
	Slots      []WindowSlot `json:"slots"`
	TotalPrice float64      `json:"totalPrice,omitempty"`
}

// WindowSlot слот выбранного окна
type WindowSlot struct {
	ID        int64   `json:"id"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(facilityID int64, dateStr, startTimeStr, hoursStr string) (*selectWindow.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(startTimeStr)
	if err != nil {
		return nil, err
	}

	hours, err := strconv.Atoi(hoursStr)
	if err != nil {
		return nil, err
	}

	return &selectWindow.Request{
		FacilityID: facilityID,
		Date:       date,
		StartTime:  startTime,
		Hours:      hours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectWindow.Response) *WindowResponse {
	slots := make([]WindowSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = WindowSlot{
			ID:        slot.ID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Price:     slot.Price,
		}
	}

	return &WindowResponse{
		Available:  resp.Available,
		CourtID:    resp.CourtID,
		CourtName:  resp.CourtName,
		SlotIDs:    resp.SlotIDs,
		Slots:      slots,
		TotalPrice: resp.TotalPrice,
	}
}

package get_slot_grid

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/reporting/models"
)

// SlotView HTTP-представление одного места
type SlotView struct {
	SlotNo      int     `json:"slotNo"`
	State       string  `json:"state"` // "free" | "occupied"
	OwnerName   *string `json:"ownerName,omitempty"`
	VehicleNo   *string `json:"vehicleNo,omitempty"`
	CheckinTime *string `json:"checkinTime,omitempty"`
}

// SlotGridResponse HTTP response model
type SlotGridResponse struct {
	TotalSlots int        `json:"totalSlots"`
	Slots      []SlotView `json:"slots"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SlotGridResponse) *SlotGridResponse {
	slots := make([]SlotView, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		view := SlotView{
			SlotNo:    s.SlotNo,
			State:     string(s.State),
			OwnerName: s.OwnerName,
			VehicleNo: s.VehicleNo,
		}
		if s.CheckinTime != nil {
			formatted := s.CheckinTime.Format(domain.TimestampFormat)
			view.CheckinTime = &formatted
		}
		slots = append(slots, view)
	}

	return &SlotGridResponse{
		TotalSlots: resp.TotalSlots,
		Slots:      slots,
	}
}

package book_slot

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	OwnerName     string `json:"ownerName"`
	VehicleNo     string `json:"vehicleNo"`
	PreferredSlot *int   `json:"preferredSlot,omitempty"`
}

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	SlotNo      int     `json:"slotNo"`
	OwnerName   string  `json:"ownerName"`
	VehicleNo   string  `json:"vehicleNo"`
	CheckinTime string  `json:"checkinTime"`
	TicketRef   *string `json:"ticketRef,omitempty"`
	CreatedBy   string  `json:"createdBy"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest(session domain.Session) *bookSlot.Request {
	return &bookSlot.Request{
		PreferredSlot: r.PreferredSlot,
		OwnerName:     r.OwnerName,
		VehicleNo:     r.VehicleNo,
		Session:       session,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response) *BookSlotResponse {
	return &BookSlotResponse{
		SlotNo:      resp.SlotNo,
		OwnerName:   resp.OwnerName,
		VehicleNo:   resp.VehicleNo,
		CheckinTime: resp.CheckinTime.Format(domain.TimestampFormat),
		TicketRef:   resp.TicketRef,
		CreatedBy:   resp.CreatedBy,
	}
}

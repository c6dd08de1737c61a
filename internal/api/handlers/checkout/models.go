package checkout

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	checkoutUC "github.com/m04kA/SMC-ParkingService/internal/usecase/checkout"
)

// QuoteResponse HTTP response model с котировкой к оплате
type QuoteResponse struct {
	SlotNo      int     `json:"slotNo"`
	OwnerName   string  `json:"ownerName"`
	VehicleNo   string  `json:"vehicleNo"`
	CheckinTime string  `json:"checkinTime"`
	Hours       int     `json:"hours"`
	Amount      float64 `json:"amount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkoutUC.Response) *QuoteResponse {
	return &QuoteResponse{
		SlotNo:      resp.SlotNo,
		OwnerName:   resp.OwnerName,
		VehicleNo:   resp.VehicleNo,
		CheckinTime: resp.CheckinTime.Format(domain.TimestampFormat),
		Hours:       resp.Hours,
		Amount:      resp.Amount,
	}
}

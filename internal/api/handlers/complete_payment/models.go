package complete_payment

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	completePayment "github.com/m04kA/SMC-ParkingService/internal/usecase/complete_payment"
)

// CompletePaymentRequest HTTP request model
// Hours и Amount возвращаются из подтвержденной котировки checkout
type CompletePaymentRequest struct {
	Hours  int     `json:"hours"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"` // "UPI" | "Card" | "Cash"
	TxnID  *string `json:"txnId,omitempty"`
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	PaymentID    int64   `json:"paymentId"`
	SlotNo       int     `json:"slotNo"`
	Amount       float64 `json:"amount"`
	HoursCharged int     `json:"hoursCharged"`
	Method       string  `json:"method"`
	TxnID        *string `json:"txnId,omitempty"`
	PaidAt       string  `json:"paidAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CompletePaymentRequest) ToUseCaseRequest(slotNo int) *completePayment.Request {
	return &completePayment.Request{
		SlotNo: slotNo,
		Hours:  r.Hours,
		Amount: r.Amount,
		Method: domain.PaymentMethod(r.Method),
		TxnID:  r.TxnID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completePayment.Response) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:    resp.PaymentID,
		SlotNo:       resp.SlotNo,
		Amount:       resp.Amount,
		HoursCharged: resp.HoursCharged,
		Method:       resp.Method,
		TxnID:        resp.TxnID,
		PaidAt:       resp.PaidAt.Format(time.RFC3339),
	}
}

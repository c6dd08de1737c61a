package get_payments

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/reporting/models"
)

// PaymentView HTTP-представление платёжной записи
type PaymentView struct {
	ID           int64   `json:"id"`
	SlotNo       int     `json:"slotNo"`
	Amount       float64 `json:"amount"`
	HoursCharged int     `json:"hoursCharged"`
	Method       string  `json:"method"`
	TxnID        *string `json:"txnId,omitempty"`
	PaidAt       string  `json:"paidAt"`
}

// PaymentListResponse HTTP response model
type PaymentListResponse struct {
	Payments []PaymentView `json:"payments"`
}

type Handler struct {
	service ReportingService
	logger  Logger
}

func NewHandler(service ReportingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments (только для администратора)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.PaymentHistory(r.Context())
	if err != nil {
		h.logger.Error("GET /payments - Failed to fetch payment history: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.PaymentListResponse) *PaymentListResponse {
	payments := make([]PaymentView, 0, len(resp.Payments))
	for _, p := range resp.Payments {
		payments = append(payments, PaymentView{
			ID:           p.ID,
			SlotNo:       p.SlotNo,
			Amount:       p.Amount,
			HoursCharged: p.HoursCharged,
			Method:       p.Method,
			TxnID:        p.TxnID,
			PaidAt:       p.PaidAt.Format(time.RFC3339),
		})
	}
	return &PaymentListResponse{Payments: payments}
}

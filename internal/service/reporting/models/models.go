package models

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotGridResponse сетка занятости парковки
type SlotGridResponse struct {
	TotalSlots int
	Slots      []domain.SlotView
}

// SummaryResponse сводка занятости и выручки
type SummaryResponse struct {
	Total        int
	Occupied     int
	Free         int
	TotalRevenue float64
}

// PaymentResponse платёжная запись для вызывающего слоя
type PaymentResponse struct {
	ID           int64
	SlotNo       int
	Amount       float64
	HoursCharged int
	Method       string
	TxnID        *string
	PaidAt       time.Time
}

// PaymentListResponse история платежей
type PaymentListResponse struct {
	Payments []PaymentResponse
}

// FromDomainPayment конвертирует доменный платеж в ответ сервиса
func FromDomainPayment(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		SlotNo:       p.SlotNo,
		Amount:       p.Amount,
		HoursCharged: p.HoursCharged,
		Method:       string(p.Method),
		TxnID:        p.TxnID,
		PaidAt:       p.PaidAt,
	}
}

// FromDomainPaymentList конвертирует список платежей в ответ сервиса
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	result := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		result = append(result, FromDomainPayment(p))
	}
	return &PaymentListResponse{Payments: result}
}

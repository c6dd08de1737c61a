package domain

import "time"

// PaymentMethod способ оплаты
type PaymentMethod string

const (
	MethodUPI  PaymentMethod = "UPI"
	MethodCard PaymentMethod = "Card"
	MethodCash PaymentMethod = "Cash"
)

// IsValid проверяет, что способ оплаты входит в допустимый набор
func (m PaymentMethod) IsValid() bool {
	return m == MethodUPI || m == MethodCard || m == MethodCash
}

// Payment постоянная платёжная запись
// Создается ровно один раз при завершении checkout, неизменяема,
// никогда не удаляется — в отличие от Booking переживает освобождение места
type Payment struct {
	ID           int64
	SlotNo       int
	Amount       float64
	HoursCharged int
	Method       PaymentMethod
	TxnID        *string // идентификатор внешней транзакции (опционально)
	PaidAt       time.Time
}

package complete_payment

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на подтверждение оплаты
// Hours и Amount приходят из подтвержденной вызывающим котировки checkout
type Request struct {
	SlotNo int                  // Номер оплачиваемого места
	Hours  int                  // Оплачиваемые часы из котировки
	Amount float64              // Сумма из котировки
	Method domain.PaymentMethod // Способ оплаты (UPI | Card | Cash)
	TxnID  *string              // Идентификатор внешней транзакции (опционально)
}

// Response модель ответа с зафиксированным платежом
type Response struct {
	PaymentID    int64     // Назначенный ключ платёжной записи
	SlotNo       int       // Освобожденное место
	Amount       float64   // Уплаченная сумма
	HoursCharged int       // Оплаченные часы
	Method       string    // Способ оплаты
	TxnID        *string   // Идентификатор внешней транзакции
	PaidAt       time.Time // Время фиксации оплаты
}

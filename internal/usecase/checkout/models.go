package checkout

import "time"

// Request модель запроса на расчет при выезде
type Request struct {
	SlotNo int // Номер освобождаемого места
}

// Response котировка к оплате, предъявляется вызывающему для подтверждения
// Оплата фиксируется отдельной операцией complete_payment
type Response struct {
	SlotNo      int       // Номер места
	OwnerName   string    // Имя владельца
	VehicleNo   string    // Номер ТС
	CheckinTime time.Time // Время заезда
	Hours       int       // Оплачиваемые часы (минимум 1)
	Amount      float64   // Сумма к оплате
}

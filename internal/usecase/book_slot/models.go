package book_slot

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на бронирование места
type Request struct {
	PreferredSlot *int           // Предпочитаемое место (опционально; nil - первое свободное)
	OwnerName     string         // Имя владельца
	VehicleNo     string         // Номер транспортного средства (нормализуется к верхнему регистру)
	Session       domain.Session // Кто бронирует (явная сессия вместо глобального состояния)
}

// Response модель ответа с созданным бронированием
type Response struct {
	SlotNo      int       // Назначенное место
	OwnerName   string    // Имя владельца
	VehicleNo   string    // Номер ТС после нормализации
	CheckinTime time.Time // Время заезда
	TicketRef   *string   // Путь к QR-билету (nil при сбое экспорта)
	CreatedBy   string    // Кто создал бронирование
}

package domain

import (
	"fmt"
	"time"
)

// Booking активная запись о занятом месте
// Существует ровно пока место занято: создается при бронировании,
// физически удаляется при успешном checkout (история остается в Payment)
type Booking struct {
	SlotNo      int
	OwnerName   string
	VehicleNo   string
	CheckinTime time.Time
	TicketRef   *string // путь к экспортированному QR-билету (может отсутствовать при сбое экспорта)
	CreatedBy   string  // username создавшего бронирование
	CreatedAt   time.Time
}

// TicketText формирует текстовый блок билета для экспорта
// Формат фиксирован: по нему сканируется QR-артефакт
func (b *Booking) TicketText() string {
	return fmt.Sprintf(
		"Slot: %d\nOwner: %s\nVehicle: %s\nCheck-In: %s",
		b.SlotNo, b.OwnerName, b.VehicleNo, b.CheckinTime.Format(TimestampFormat),
	)
}

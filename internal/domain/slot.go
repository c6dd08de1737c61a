package domain

import "time"

// SlotState состояние парковочного места
// Состояние не хранится: место занято тогда и только тогда,
// когда существует Booking с его номером
type SlotState string

const (
	SlotFree     SlotState = "free"
	SlotOccupied SlotState = "occupied"
)

// SlotView представление места для сетки занятости
// Данные о владельце заполнены только для занятых мест
type SlotView struct {
	SlotNo      int
	State       SlotState
	OwnerName   *string
	VehicleNo   *string
	CheckinTime *time.Time
}

// OccupancySummary сводка занятости парковки
type OccupancySummary struct {
	Total    int
	Occupied int
	Free     int
}

package allocation

import "errors"

var (
	// ErrInvalidSlot возвращается, когда предпочитаемое место вне диапазона парковки
	ErrInvalidSlot = errors.New("allocation: slot number out of range")

	// ErrSlotTaken возвращается, когда предпочитаемое место уже занято
	ErrSlotTaken = errors.New("allocation: slot already taken")

	// ErrLotFull возвращается, когда свободных мест нет
	ErrLotFull = errors.New("allocation: no free slots available")
)

package checkout

import "errors"

var (
	// ErrInvalidSlot возвращается, когда номер места вне диапазона парковки
	ErrInvalidSlot = errors.New("checkout: slot number out of range")

	// ErrNotBooked возвращается, когда место не занято
	ErrNotBooked = errors.New("checkout: slot is not booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout: internal error")
)

package book_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_slot: invalid input data")

	// ErrInvalidSlot возвращается, когда предпочитаемое место вне диапазона
	ErrInvalidSlot = errors.New("book_slot: preferred slot out of range")

	// ErrSlotTaken возвращается, когда предпочитаемое место уже занято
	ErrSlotTaken = errors.New("book_slot: slot already taken")

	// ErrLotFull возвращается, когда свободных мест нет
	ErrLotFull = errors.New("book_slot: parking lot is full")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_slot: internal error")
)

package complete_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_payment: invalid input data")

	// ErrNotBooked возвращается, когда бронирование исчезло между котировкой
	// и подтверждением оплаты (например, конкурирующий checkout того же места)
	ErrNotBooked = errors.New("complete_payment: slot is not booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_payment: internal error")
)

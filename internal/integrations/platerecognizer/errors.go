package platerecognizer

import "errors"

var (
	// ErrNotAvailable возвращается, когда распознавание выключено конфигурацией
	ErrNotAvailable = errors.New("platerecognizer: recognition is not available")

	// ErrNotRecognized возвращается, когда сервис не смог прочитать номер
	ErrNotRecognized = errors.New("platerecognizer: plate not recognized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("platerecognizer client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("platerecognizer client: invalid response")
)

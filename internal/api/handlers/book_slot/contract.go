package book_slot

import (
	"context"

	bookSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/book_slot"
)

// BookSlotUseCase интерфейс use case бронирования места
type BookSlotUseCase interface {
	Execute(ctx context.Context, req *bookSlot.Request) (*bookSlot.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

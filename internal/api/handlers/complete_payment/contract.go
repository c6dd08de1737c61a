package complete_payment

import (
	"context"

	completePayment "github.com/m04kA/SMC-ParkingService/internal/usecase/complete_payment"
)

// CompletePaymentUseCase интерфейс use case подтверждения оплаты
type CompletePaymentUseCase interface {
	Execute(ctx context.Context, req *completePayment.Request) (*completePayment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

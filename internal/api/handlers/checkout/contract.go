package checkout

import (
	"context"

	checkoutUC "github.com/m04kA/SMC-ParkingService/internal/usecase/checkout"
)

// CheckoutUseCase интерфейс use case расчета при выезде
type CheckoutUseCase interface {
	Execute(ctx context.Context, req *checkoutUC.Request) (*checkoutUC.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_payments

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/reporting/models"
)

// ReportingService интерфейс сервиса отчетности
type ReportingService interface {
	PaymentHistory(ctx context.Context) (*models.PaymentListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

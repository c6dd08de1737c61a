package get_slot_grid

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/reporting/models"
)

// ReportingService интерфейс сервиса отчетности
type ReportingService interface {
	SlotGrid(ctx context.Context) (*models.SlotGridResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

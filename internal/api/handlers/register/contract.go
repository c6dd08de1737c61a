package register

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
)

// AccountsService интерфейс сервиса учетных записей
type AccountsService interface {
	Register(ctx context.Context, username, password string) (*models.AccountResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

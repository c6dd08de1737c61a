package login

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
)

// AccountsService интерфейс сервиса учетных записей
type AccountsService interface {
	Authenticate(ctx context.Context, username, password string, role domain.Role) (*models.AccountResponse, error)
}

// TokenIssuer интерфейс выпуска токенов сессий
type TokenIssuer interface {
	Issue(session domain.Session) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package accounts

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// AccountRepository интерфейс репозитория учетных записей
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string, role domain.Role) (*domain.Account, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Repository репозиторий для работы с учетными записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория учетных записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает учетную запись
// Дубликат (username, role) отклоняется базой с ErrUsernameTaken
func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("accounts").
		Columns(
			"username",
			"password_hash",
			"role",
		).
		Values(
			account.Username,
			account.PasswordHash,
			account.Role,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	account.CreatedAt = createdAt.Time

	return account, nil
}

// GetByUsername получает учетную запись по имени внутри партиции роли
func (r *Repository) GetByUsername(ctx context.Context, username string, role domain.Role) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"username",
		"password_hash",
		"role",
		"created_at",
	).
		From("accounts").
		Where(squirrel.Eq{"username": username, "role": role}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var account domain.Account
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&account.Username,
		&account.PasswordHash,
		&account.Role,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - scan account: %v", ErrScanRow, err)
	}

	account.CreatedAt = createdAt.Time

	return &account, nil
}

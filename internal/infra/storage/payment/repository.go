package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с платежами
// Платежи только добавляются и читаются: это постоянный аудиторский журнал
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает платёжную запись
// Если в контексте передана активная транзакция, использует её —
// вставка платежа и удаление бронирования идут одной атомарной единицей
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"slot_no",
			"amount",
			"hours_charged",
			"method",
			"txn_id",
			"paid_at",
		).
		Values(
			payment.SlotNo,
			payment.Amount,
			payment.HoursCharged,
			payment.Method,
			payment.TxnID,
			payment.PaidAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&payment.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return payment, nil
}

// ListAll получает историю платежей, сначала самые свежие
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_no",
		"amount",
		"hours_charged",
		"method",
		"txn_id",
		"paid_at",
	).
		From("payments").
		OrderBy("paid_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(
			&p.ID,
			&p.SlotNo,
			&p.Amount,
			&p.HoursCharged,
			&p.Method,
			&p.TxnID,
			&p.PaidAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

// TotalRevenue возвращает сумму всех платежей; 0, если платежей нет
func (r *Repository) TotalRevenue(ctx context.Context) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: TotalRevenue - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("%w: TotalRevenue - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

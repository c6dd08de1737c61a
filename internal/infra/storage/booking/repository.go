package booking

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

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникальности
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование места
// slot_no — первичный ключ: повторное бронирование занятого места
// отклоняется базой с ErrSlotTaken, а не перезаписывает предыдущее.
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"slot_no",
			"owner_name",
			"vehicle_no",
			"checkin_time",
			"ticket_ref",
			"created_by",
		).
		Values(
			booking.SlotNo,
			booking.OwnerName,
			booking.VehicleNo,
			booking.CheckinTime,
			booking.TicketRef,
			booking.CreatedBy,
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
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetBySlot получает бронирование по номеру места
// Внутри транзакции читает с блокировкой FOR UPDATE, чтобы конкурирующий
// checkout того же места дождался завершения текущего
func (r *Repository) GetBySlot(ctx context.Context, slotNo int) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"slot_no",
		"owner_name",
		"vehicle_no",
		"checkin_time",
		"ticket_ref",
		"created_by",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"slot_no": slotNo})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.SlotNo,
		&booking.OwnerName,
		&booking.VehicleNo,
		&booking.CheckinTime,
		&booking.TicketRef,
		&booking.CreatedBy,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// ListAll получает все активные бронирования по возрастанию номера места
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"slot_no",
		"owner_name",
		"vehicle_no",
		"checkin_time",
		"ticket_ref",
		"created_by",
		"created_at",
	).
		From("bookings").
		OrderBy("slot_no ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListOccupiedSlots получает номера занятых мест
// Внутри транзакции блокирует строки бронирований (FOR UPDATE), чтобы
// "место не занято" и "вставить бронирование" нельзя было расслоить
// конкурирующим бронированием того же места
func (r *Repository) ListOccupiedSlots(ctx context.Context) ([]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("slot_no").
		From("bookings").
		OrderBy("slot_no ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupiedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupiedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]int, 0)
	for rows.Next() {
		var slotNo int
		if err := rows.Scan(&slotNo); err != nil {
			return nil, fmt.Errorf("%w: ListOccupiedSlots - scan slot_no: %v", ErrScanRow, err)
		}
		slots = append(slots, slotNo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOccupiedSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// UpdateTicketRef записывает путь к экспортированному билету
// Экспорт идет после коммита бронирования, поэтому отдельным запросом
func (r *Repository) UpdateTicketRef(ctx context.Context, slotNo int, ticketRef string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("ticket_ref", ticketRef).
		Where(squirrel.Eq{"slot_no": slotNo}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTicketRef - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateTicketRef - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateTicketRef - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование места (освобождает место при checkout)
func (r *Repository) Delete(ctx context.Context, slotNo int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"slot_no": slotNo}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.SlotNo,
			&booking.OwnerName,
			&booking.VehicleNo,
			&booking.CheckinTime,
			&booking.TicketRef,
			&booking.CreatedBy,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

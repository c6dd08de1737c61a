package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var testCheckin = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) ListAll(_ context.Context) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakePaymentRepo struct {
	payments []*domain.Payment
	revenue  float64
	err      error
}

func (f *fakePaymentRepo) ListAll(_ context.Context) ([]*domain.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payments, nil
}

func (f *fakePaymentRepo) TotalRevenue(_ context.Context) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.revenue, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func booking(slotNo int, owner string) *domain.Booking {
	return &domain.Booking{
		SlotNo:      slotNo,
		OwnerName:   owner,
		VehicleNo:   "KA01AB1234",
		CheckinTime: testCheckin,
	}
}

func TestSlotGrid(t *testing.T) {
	t.Parallel()

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(2, "Ivan"),
		booking(5, "Petr"),
	}}
	svc := NewService(bookings, &fakePaymentRepo{}, 12, noopLogger{})

	grid, err := svc.SlotGrid(context.Background())
	require.NoError(t, err)
	require.Equal(t, 12, grid.TotalSlots)
	require.Len(t, grid.Slots, 12)

	for i, view := range grid.Slots {
		require.Equal(t, i+1, view.SlotNo, "slots are ordered 1..N")
	}

	require.Equal(t, domain.SlotOccupied, grid.Slots[1].State)
	require.Equal(t, "Ivan", *grid.Slots[1].OwnerName)
	require.Equal(t, "KA01AB1234", *grid.Slots[1].VehicleNo)
	require.Equal(t, testCheckin, *grid.Slots[1].CheckinTime)

	require.Equal(t, domain.SlotFree, grid.Slots[0].State)
	require.Nil(t, grid.Slots[0].OwnerName)
	require.Nil(t, grid.Slots[0].VehicleNo)
}

func TestSlotGridEmptyLot(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeBookingRepo{}, &fakePaymentRepo{}, 12, noopLogger{})

	grid, err := svc.SlotGrid(context.Background())
	require.NoError(t, err)
	require.Len(t, grid.Slots, 12)
	for _, view := range grid.Slots {
		require.Equal(t, domain.SlotFree, view.State)
	}
}

func TestOccupancySummary(t *testing.T) {
	t.Parallel()

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		booking(1, "Ivan"),
		booking(2, "Petr"),
		booking(7, "Olga"),
	}}
	payments := &fakePaymentRepo{revenue: 60}
	svc := NewService(bookings, payments, 12, noopLogger{})

	summary, err := svc.OccupancySummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 12, summary.Total)
	require.Equal(t, 3, summary.Occupied)
	require.Equal(t, 9, summary.Free)
	require.InDelta(t, 60.0, summary.TotalRevenue, 1e-9)

	// Сводка — чистое чтение: повторный вызов дает тот же результат
	again, err := svc.OccupancySummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, summary, again)
}

func TestOccupancySummaryEmptyLot(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeBookingRepo{}, &fakePaymentRepo{}, 12, noopLogger{})

	summary, err := svc.OccupancySummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, summary.Occupied)
	require.Equal(t, 12, summary.Free)
	require.Zero(t, summary.TotalRevenue)
}

func TestPaymentHistory(t *testing.T) {
	t.Parallel()

	txn := "TXN-100"
	payments := &fakePaymentRepo{payments: []*domain.Payment{
		{ID: 2, SlotNo: 5, Amount: 40, HoursCharged: 2, Method: domain.MethodCard, TxnID: &txn},
		{ID: 1, SlotNo: 3, Amount: 20, HoursCharged: 1, Method: domain.MethodCash},
	}}
	svc := NewService(&fakeBookingRepo{}, payments, 12, noopLogger{})

	history, err := svc.PaymentHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history.Payments, 2)
	require.Equal(t, int64(2), history.Payments[0].ID, "repository order is preserved")
	require.Equal(t, "Card", history.Payments[0].Method)
	require.Equal(t, "TXN-100", *history.Payments[0].TxnID)
	require.Nil(t, history.Payments[1].TxnID)
}

func TestReportingRepositoryFailure(t *testing.T) {
	t.Parallel()

	broken := errors.New("connection refused")

	svc := NewService(&fakeBookingRepo{err: broken}, &fakePaymentRepo{}, 12, noopLogger{})
	_, err := svc.SlotGrid(context.Background())
	require.ErrorIs(t, err, ErrInternal)

	svc = NewService(&fakeBookingRepo{}, &fakePaymentRepo{err: broken}, 12, noopLogger{})
	_, err = svc.PaymentHistory(context.Background())
	require.ErrorIs(t, err, ErrInternal)
}

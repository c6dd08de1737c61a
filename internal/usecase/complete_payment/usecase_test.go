package complete_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
)

var testPaidAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings  map[int]*domain.Booking
	deleteErr error
}

func (f *fakeBookingRepo) GetBySlot(_ context.Context, slotNo int) (*domain.Booking, error) {
	booking, ok := f.bookings[slotNo]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, slotNo int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.bookings, slotNo)
	return nil
}

type fakePaymentRepo struct {
	created []*domain.Payment
	err     error
	nextID  int64
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	saved := *payment
	saved.ID = f.nextID
	f.created = append(f.created, &saved)
	return &saved, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, payments *fakePaymentRepo) *UseCase {
	uc := NewUseCase(bookings, payments, fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testPaidAt}
	return uc
}

func repoWithBooking(slotNo int) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: map[int]*domain.Booking{
			slotNo: {
				SlotNo:      slotNo,
				OwnerName:   "Ivan",
				VehicleNo:   "KA01AB1234",
				CheckinTime: testPaidAt.Add(-90 * time.Minute),
			},
		},
	}
}

func validRequest() *Request {
	return &Request{
		SlotNo: 4,
		Hours:  1,
		Amount: 20,
		Method: domain.MethodCash,
	}
}

func TestExecuteRecordsPaymentAndFreesSlot(t *testing.T) {
	t.Parallel()

	bookings := repoWithBooking(4)
	payments := &fakePaymentRepo{}
	uc := newTestUseCase(bookings, payments)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.PaymentID)
	require.Equal(t, 4, resp.SlotNo)
	require.InDelta(t, 20.0, resp.Amount, 1e-9)
	require.Equal(t, 1, resp.HoursCharged)
	require.Equal(t, string(domain.MethodCash), resp.Method)
	require.Equal(t, testPaidAt, resp.PaidAt)

	require.Len(t, payments.created, 1)
	require.NotContains(t, bookings.bookings, 4, "slot is freed after payment")
}

// Повторная оплата того же места проваливается: бронирование уже удалено
func TestExecuteDoublePayment(t *testing.T) {
	t.Parallel()

	bookings := repoWithBooking(4)
	payments := &fakePaymentRepo{}
	uc := newTestUseCase(bookings, payments)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrNotBooked)
	require.Len(t, payments.created, 1, "exactly one payment row survives")
}

func TestExecuteSlotNotBooked(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeBookingRepo{bookings: map[int]*domain.Booking{}}, &fakePaymentRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrNotBooked)
}

func TestExecuteValidation(t *testing.T) {
	t.Parallel()

	longTxn := make([]byte, domain.MaxTxnIDLen+1)
	for i := range longTxn {
		longTxn[i] = 'a'
	}
	longTxnID := string(longTxn)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"zero slot", func(req *Request) { req.SlotNo = 0 }},
		{"zero hours", func(req *Request) { req.Hours = 0 }},
		{"negative amount", func(req *Request) { req.Amount = -1 }},
		{"unknown method", func(req *Request) { req.Method = "Crypto" }},
		{"transaction id too long", func(req *Request) { req.TxnID = &longTxnID }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payments := &fakePaymentRepo{}
			uc := newTestUseCase(repoWithBooking(4), payments)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.Empty(t, payments.created)
		})
	}
}

// Пустой после обрезки txn_id превращается в nil
func TestExecuteBlankTxnIDBecomesNil(t *testing.T) {
	t.Parallel()

	payments := &fakePaymentRepo{}
	uc := newTestUseCase(repoWithBooking(4), payments)

	blank := "   "
	req := validRequest()
	req.TxnID = &blank

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Nil(t, resp.TxnID)
}

// Сбой вставки платежа оставляет бронирование на месте
func TestExecutePaymentFailureKeepsBooking(t *testing.T) {
	t.Parallel()

	bookings := repoWithBooking(4)
	payments := &fakePaymentRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(bookings, payments)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)
	require.Contains(t, bookings.bookings, 4)
}

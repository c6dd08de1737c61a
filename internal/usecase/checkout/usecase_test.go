package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/internal/pricing"
)

const testTotalSlots = 12

var testCheckin = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings map[int]*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetBySlot(_ context.Context, slotNo int) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	booking, ok := f.bookings[slotNo]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
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

func newTestUseCase(repo *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, pricing.Tariff{PricePerHour: 20}, testTotalSlots, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecuteQuote(t *testing.T) {
	t.Parallel()

	repo := &fakeBookingRepo{
		bookings: map[int]*domain.Booking{
			4: {
				SlotNo:      4,
				OwnerName:   "Ivan",
				VehicleNo:   "KA01AB1234",
				CheckinTime: testCheckin,
			},
		},
	}

	tests := []struct {
		name       string
		elapsed    time.Duration
		wantHours  int
		wantAmount float64
	}{
		{"short stay charges minimum hour", 10 * time.Minute, 1, 20},
		{"ninety minutes rounds down", 90 * time.Minute, 1, 20},
		{"two hours", 2 * time.Hour, 2, 40},
		{"two and a half hours", 150 * time.Minute, 2, 40},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := newTestUseCase(repo, testCheckin.Add(tt.elapsed))

			resp, err := uc.Execute(context.Background(), &Request{SlotNo: 4})
			require.NoError(t, err)
			require.Equal(t, 4, resp.SlotNo)
			require.Equal(t, "Ivan", resp.OwnerName)
			require.Equal(t, "KA01AB1234", resp.VehicleNo)
			require.Equal(t, testCheckin, resp.CheckinTime)
			require.Equal(t, tt.wantHours, resp.Hours)
			require.InDelta(t, tt.wantAmount, resp.Amount, 1e-9)
		})
	}
}

func TestExecuteSlotOutOfRange(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeBookingRepo{}, testCheckin)

	for _, slotNo := range []int{0, -1, testTotalSlots + 1} {
		_, err := uc.Execute(context.Background(), &Request{SlotNo: slotNo})
		require.ErrorIs(t, err, ErrInvalidSlot)
	}
}

func TestExecuteSlotNotBooked(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeBookingRepo{}, testCheckin)

	_, err := uc.Execute(context.Background(), &Request{SlotNo: 5})
	require.ErrorIs(t, err, ErrNotBooked)
}

func TestExecuteRepositoryFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, testCheckin)

	_, err := uc.Execute(context.Background(), &Request{SlotNo: 5})
	require.ErrorIs(t, err, ErrInternal)
}

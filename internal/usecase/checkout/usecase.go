package checkout

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/internal/pricing"
)

// UseCase use case расчета стоимости стоянки при выезде
// Ничего не изменяет: только считает котировку (часы, сумма) по бронированию
type UseCase struct {
	bookingRepo  BookingRepository
	tariff       pricing.Tariff
	totalSlots   int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tariff pricing.Tariff,
	totalSlots int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tariff:       tariff,
		totalSlots:   totalSlots,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает котировку к оплате за стоянку на указанном месте
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SlotNo < 1 || req.SlotNo > uc.totalSlots {
		uc.logger.Warn("Checkout: slot %d out of range", req.SlotNo)
		return nil, ErrInvalidSlot
	}

	booking, err := uc.bookingRepo.GetBySlot(ctx, req.SlotNo)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("Checkout: slot %d is not booked", req.SlotNo)
			return nil, ErrNotBooked
		}
		uc.logger.Error("Checkout: repository error for slot %d: %v", req.SlotNo, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	hours := pricing.HoursElapsed(booking.CheckinTime, now)
	amount := uc.tariff.Charge(hours)

	uc.logger.Info("Checkout: slot=%d, hours=%d, amount=%.2f", req.SlotNo, hours, amount)

	return &Response{
		SlotNo:      booking.SlotNo,
		OwnerName:   booking.OwnerName,
		VehicleNo:   booking.VehicleNo,
		CheckinTime: booking.CheckinTime,
		Hours:       hours,
		Amount:      amount,
	}, nil
}

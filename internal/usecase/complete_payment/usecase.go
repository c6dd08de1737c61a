package complete_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
)

// UseCase use case подтверждения оплаты и освобождения места
type UseCase struct {
	bookingRepo  BookingRepository
	paymentRepo  PaymentRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute фиксирует оплату и освобождает место одной атомарной единицей
//
// Внутри сериализуемой транзакции бронирование перечитывается с блокировкой:
// если оно исчезло между котировкой и подтверждением (конкурирующий checkout
// того же места), операция завершается ErrNotBooked и дублирующий платеж
// не записывается. Вставка платежа и удаление бронирования либо проходят
// вместе, либо откатываются вместе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CompletePayment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CompletePayment: slot=%d, hours=%d, amount=%.2f, method=%s",
		req.SlotNo, req.Hours, req.Amount, req.Method)

	var result *domain.Payment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Перепроверяем существование бронирования внутри транзакции (FOR UPDATE)
		if _, err := uc.bookingRepo.GetBySlot(txCtx, req.SlotNo); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrNotBooked
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		payment := &domain.Payment{
			SlotNo:       req.SlotNo,
			Amount:       req.Amount,
			HoursCharged: req.Hours,
			Method:       req.Method,
			TxnID:        req.TxnID,
			PaidAt:       uc.timeProvider.Now(),
		}

		created, err := uc.paymentRepo.Create(txCtx, payment)
		if err != nil {
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.Delete(txCtx, req.SlotNo); err != nil {
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrNotBooked) {
			uc.logger.Warn("CompletePayment: booking for slot %d disappeared before payment", req.SlotNo)
			return nil, ErrNotBooked
		}
		return nil, err
	}

	uc.logger.Info("CompletePayment: payment id=%d recorded, slot %d freed", result.ID, result.SlotNo)

	return &Response{
		PaymentID:    result.ID,
		SlotNo:       result.SlotNo,
		Amount:       result.Amount,
		HoursCharged: result.HoursCharged,
		Method:       string(result.Method),
		TxnID:        result.TxnID,
		PaidAt:       result.PaidAt,
	}, nil
}

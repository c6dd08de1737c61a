package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/allocation"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
)

// UseCase use case бронирования парковочного места
type UseCase struct {
	bookingRepo    BookingRepository
	ticketExporter TicketExporter
	txManager      TransactionManager
	totalSlots     int
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	ticketExporter TicketExporter,
	txManager TransactionManager,
	totalSlots int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		ticketExporter: ticketExporter,
		txManager:      txManager,
		totalSlots:     totalSlots,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case бронирования места
//
// Выбор места и вставка бронирования идут одной сериализуемой транзакцией:
// конкурирующее бронирование не может вклиниться между "место свободно"
// и "записать бронирование". Если уникальный ключ slot_no всё же отбил
// вставку (страховка на случай обхода транзакции), запрос без предпочтения
// повторяется один раз со следующим свободным местом; с предпочтением
// конфликт отдается вызывающему как ErrSlotTaken.
//
// Занятое место никогда не перезаписывается: повторное бронирование того же
// места всегда завершается ErrSlotTaken, без тихой потери предыдущего заезда.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BookSlot: owner=%s, vehicle=%s, preferred=%v, user=%s",
		req.OwnerName, req.VehicleNo, req.PreferredSlot, req.Session.Username)

	var result *domain.Booking

	const maxAttempts = 2
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		booking, err := uc.tryBook(ctx, req)
		if err == nil {
			result = booking
			break
		}

		// Повторяем один раз только гонку на уникальном ключе и только
		// когда вызывающий не настаивал на конкретном месте
		if errors.Is(err, bookingRepo.ErrSlotTaken) && req.PreferredSlot == nil && attempt < maxAttempts {
			uc.logger.Warn("BookSlot: slot race detected, retrying with next free slot")
			continue
		}

		return nil, uc.mapBookingError(err)
	}

	uc.logger.Info("BookSlot: slot %d booked for %s", result.SlotNo, req.OwnerName)

	// Экспорт билета идет после коммита и не влияет на судьбу бронирования:
	// сбой экспорта логируется, бронирование остается в силе
	ticketRef := uc.exportTicket(ctx, result)

	return &Response{
		SlotNo:      result.SlotNo,
		OwnerName:   result.OwnerName,
		VehicleNo:   result.VehicleNo,
		CheckinTime: result.CheckinTime,
		TicketRef:   ticketRef,
		CreatedBy:   result.CreatedBy,
	}, nil
}

// tryBook выполняет одну транзакционную попытку выбора и записи бронирования
func (uc *UseCase) tryBook(ctx context.Context, req *Request) (*domain.Booking, error) {
	var created *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Читаем занятые места с блокировкой (FOR UPDATE)
		occupied, err := uc.bookingRepo.ListOccupiedSlots(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to list occupied slots: %v", ErrInternal, err)
		}

		slotNo, err := allocation.Allocate(req.PreferredSlot, allocation.OccupiedSet(occupied), uc.totalSlots)
		if err != nil {
			return err
		}

		booking := &domain.Booking{
			SlotNo:      slotNo,
			OwnerName:   req.OwnerName,
			VehicleNo:   req.VehicleNo,
			CheckinTime: uc.timeProvider.Now(),
			CreatedBy:   req.Session.Username,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}

// mapBookingError переводит ошибки нижних слоев в ошибки usecase
func (uc *UseCase) mapBookingError(err error) error {
	switch {
	case errors.Is(err, allocation.ErrInvalidSlot):
		return ErrInvalidSlot
	case errors.Is(err, allocation.ErrSlotTaken), errors.Is(err, bookingRepo.ErrSlotTaken):
		return ErrSlotTaken
	case errors.Is(err, allocation.ErrLotFull):
		return ErrLotFull
	case errors.Is(err, ErrInternal):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// exportTicket экспортирует QR-билет и записывает его путь в бронирование
// Возвращает nil при любом сбое: экспорт не критичен для бронирования
func (uc *UseCase) exportTicket(ctx context.Context, booking *domain.Booking) *string {
	path, err := uc.ticketExporter.Export(booking.TicketText(), booking.SlotNo)
	if err != nil {
		uc.logger.Error("BookSlot: ticket export failed for slot %d: %v", booking.SlotNo, err)
		return nil
	}

	if err := uc.bookingRepo.UpdateTicketRef(ctx, booking.SlotNo, path); err != nil {
		uc.logger.Error("BookSlot: failed to store ticket ref for slot %d: %v", booking.SlotNo, err)
		return nil
	}

	return &path
}

package reporting

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/reporting/models"
)

// Service сервис отчетности: сетка занятости, сводка, история платежей
// Только чтение, состояние мест каждый раз выводится заново из бронирований —
// представление занятости не может разойтись со строками bookings
type Service struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	totalSlots  int
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчетности
func NewService(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	totalSlots int,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		totalSlots:  totalSlots,
		logger:      logger,
	}
}

// SlotGrid возвращает состояние каждого места парковки
// Для занятых мест заполнены владелец, номер машины и время заезда
func (s *Service) SlotGrid(ctx context.Context) (*models.SlotGridResponse, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("SlotGrid: repository error: %v", err)
		return nil, fmt.Errorf("%w: SlotGrid - repository error: %v", ErrInternal, err)
	}

	bySlot := make(map[int]*domain.Booking, len(bookings))
	for _, b := range bookings {
		bySlot[b.SlotNo] = b
	}

	slots := make([]domain.SlotView, 0, s.totalSlots)
	for slotNo := 1; slotNo <= s.totalSlots; slotNo++ {
		view := domain.SlotView{
			SlotNo: slotNo,
			State:  domain.SlotFree,
		}
		if b, ok := bySlot[slotNo]; ok {
			view.State = domain.SlotOccupied
			view.OwnerName = &b.OwnerName
			view.VehicleNo = &b.VehicleNo
			view.CheckinTime = &b.CheckinTime
		}
		slots = append(slots, view)
	}

	return &models.SlotGridResponse{
		TotalSlots: s.totalSlots,
		Slots:      slots,
	}, nil
}

// OccupancySummary возвращает сводку занятости и накопленную выручку
func (s *Service) OccupancySummary(ctx context.Context) (*models.SummaryResponse, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("OccupancySummary: booking repository error: %v", err)
		return nil, fmt.Errorf("%w: OccupancySummary - booking repository error: %v", ErrInternal, err)
	}

	revenue, err := s.paymentRepo.TotalRevenue(ctx)
	if err != nil {
		s.logger.Error("OccupancySummary: payment repository error: %v", err)
		return nil, fmt.Errorf("%w: OccupancySummary - payment repository error: %v", ErrInternal, err)
	}

	occupied := len(bookings)

	return &models.SummaryResponse{
		Total:        s.totalSlots,
		Occupied:     occupied,
		Free:         s.totalSlots - occupied,
		TotalRevenue: revenue,
	}, nil
}

// PaymentHistory возвращает историю платежей, сначала самые свежие
func (s *Service) PaymentHistory(ctx context.Context) (*models.PaymentListResponse, error) {
	payments, err := s.paymentRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("PaymentHistory: repository error: %v", err)
		return nil, fmt.Errorf("%w: PaymentHistory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PaymentHistory: fetched %d payments", len(payments))
	return models.FromDomainPaymentList(payments), nil
}

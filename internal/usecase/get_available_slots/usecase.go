package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	hours           domain.BusinessHours
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	hours domain.BusinessHours,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		hours:           hours,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%q", req.Date)

	// 1. Текущее время в зоне рабочих часов
	now := uc.hours.In(uc.timeProvider.Now())

	// 2. Разбираем дату
	date, err := parseRequestDate(req.Date, now)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем записи на эту дату
	appointments, err := uc.appointmentRepo.ListByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Вычисляем свободные слоты
	uc.logger.Debug("GetAvailableSlots: now=%s, window=%s-%s, step=%dm, appointments=%d",
		now.Format(time.RFC3339), uc.hours.OpeningTime, uc.hours.ClosingTime, uc.hours.GranularityMinutes(), len(appointments))
	slots, err := ComputeAvailableSlots(date, now, appointments, uc.hours)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, err
	}

	uc.metrics.ObserveAvailableSlots(len(slots))
	uc.logger.Info("GetAvailableSlots: %d slots available on date=%s (booked=%d)",
		len(slots), date.Format(domain.DateFormat), len(appointments))

	return &Response{
		Date:  date,
		Slots: slots,
	}, nil
}

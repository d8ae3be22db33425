package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-OpsPanel/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-OpsPanel/pkg/metrics"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	hours           domain.BusinessHours
	metrics         Metrics
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
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка слота и добавление выполняются атомарно внутри журнала.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%q, date=%q, time=%q", req.ClientName, req.Date, req.Time)

	// 1. Валидация входных данных
	date, slot, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.ObserveBooking(metrics.BookingInvalid)
		return nil, err
	}

	// 2. Слот должен попадать в рабочие часы
	if err := validateSlot(slot, uc.hours); err != nil {
		if errors.Is(err, ErrInvalidConfiguration) {
			uc.logger.Error("CreateBooking: %v", err)
			uc.metrics.ObserveBooking(metrics.BookingFailed)
			return nil, err
		}
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		uc.metrics.ObserveBooking(metrics.BookingInvalid)
		return nil, err
	}

	// 3. Добавляем запись в журнал
	created, err := uc.appointmentRepo.Create(ctx, &domain.Appointment{
		ClientName: strings.TrimSpace(req.ClientName),
		Service:    strings.TrimSpace(req.Service),
		Date:       date,
		TimeSlot:   slot,
		Status:     domain.StatusActive,
	})
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot date=%s time=%s already booked", date.Format(domain.DateFormat), slot)
			uc.metrics.ObserveBooking(metrics.BookingConflict)
			return nil, fmt.Errorf("%w: %s %s", ErrSlotConflict, date.Format(domain.DateFormat), slot)
		}
		uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
		uc.metrics.ObserveBooking(metrics.BookingFailed)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.metrics.ObserveBooking(metrics.BookingCreated)
	uc.logger.Info("CreateBooking: created appointment id=%s for client=%q on date=%s time=%s",
		created.ID, created.ClientName, created.Date.Format(domain.DateFormat), created.TimeSlot)

	return toResponse(created), nil
}

package get_dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// UseCase use case для получения сводки на сегодня
type UseCase struct {
	appointmentRepo AppointmentRepository
	inventoryRepo   InventoryRepository
	accountRepo     AccountRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// location задаёт, какая дата считается сегодняшней.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	inventoryRepo InventoryRepository,
	accountRepo AccountRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}

	return &UseCase{
		appointmentRepo: appointmentRepo,
		inventoryRepo:   inventoryRepo,
		accountRepo:     accountRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute собирает записи на сегодня, критические остатки и неоплаченные счета
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	today := domain.DateOnly(uc.timeProvider.Now().In(uc.location))
	uc.logger.Info("GetDashboard: date=%s", today.Format(domain.DateFormat))

	appointments, err := uc.appointmentRepo.ListByDate(ctx, today)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	critical, err := uc.inventoryRepo.ListCritical(ctx)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get critical stock: %v", err)
		return nil, fmt.Errorf("%w: failed to get critical stock: %v", ErrInternal, err)
	}

	due, err := uc.accountRepo.ListDue(ctx)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to get accounts due: %v", err)
		return nil, fmt.Errorf("%w: failed to get accounts due: %v", ErrInternal, err)
	}

	uc.logger.Info("GetDashboard: appointments=%d, criticalStock=%d, accountsDue=%d",
		len(appointments), len(critical), len(due))

	return &Response{
		Date:              today,
		TodayAppointments: appointments,
		CriticalStock:     critical,
		AccountsDue:       due,
	}, nil
}

package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	ListByClient(ctx context.Context, clientName string) ([]*domain.Appointment, error)
	DeleteAt(ctx context.Context, position int) (*domain.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
}

// Metrics интерфейс метрик удаления записей
type Metrics interface {
	ObserveDeletion(mode string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

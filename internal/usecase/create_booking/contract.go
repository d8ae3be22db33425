package create_booking

import (
	"context"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	// Create атомарно проверяет слот и добавляет запись
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// Metrics интерфейс метрик бронирования
type Metrics interface {
	ObserveBooking(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// AppointmentRepository интерфейс журнала записей (только чтение)
type AppointmentRepository interface {
	// ListByDate получает все записи на календарную дату
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// Metrics интерфейс метрик доступности
type Metrics interface {
	ObserveAvailableSlots(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

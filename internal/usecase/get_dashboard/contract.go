package get_dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// InventoryRepository интерфейс репозитория склада
type InventoryRepository interface {
	ListCritical(ctx context.Context) ([]*domain.InventoryItem, error)
}

// AccountRepository интерфейс репозитория счетов
type AccountRepository interface {
	ListDue(ctx context.Context) ([]*domain.Account, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

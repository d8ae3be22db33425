package accounts

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// AccountRepository интерфейс репозитория счетов к оплате
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AccountStatus) (*domain.Account, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

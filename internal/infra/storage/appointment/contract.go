package appointment

import (
	"context"

	"github.com/m04kA/SMC-OpsPanel/pkg/txmanager"
)

// DBExecutor переиспользуем интерфейс из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

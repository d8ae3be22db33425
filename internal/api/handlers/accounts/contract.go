package accounts

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OpsPanel/internal/service/accounts/models"
)

type AccountService interface {
	Create(ctx context.Context, req *models.CreateAccountRequest) (*models.AccountResponse, error)
	List(ctx context.Context) (*models.AccountListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.AccountResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.AccountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

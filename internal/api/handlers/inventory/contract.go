package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OpsPanel/internal/service/inventory/models"
)

type InventoryService interface {
	Create(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error)
	List(ctx context.Context) (*models.ItemListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

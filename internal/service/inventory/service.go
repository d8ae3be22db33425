package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	itemRepo "github.com/m04kA/SMC-OpsPanel/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-OpsPanel/internal/service/inventory/models"
)

// Service сервис для работы со складом
type Service struct {
	itemRepo ItemRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса склада
func NewService(itemRepo ItemRepository, logger Logger) *Service {
	return &Service{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// Create добавляет товар на склад
func (s *Service) Create(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("CreateItem: name=%q, quantity=%q, expiresOn=%q", req.Name, req.Quantity, req.ExpiresOn)

	item, err := validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("CreateItem: validation failed: %v", err)
		return nil, err
	}

	created, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("CreateItem: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateItem: created item id=%s", created.ID)
	return models.FromDomainItem(created), nil
}

// List возвращает все товары
func (s *Service) List(ctx context.Context) (*models.ItemListResponse, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListItems: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItemList(items), nil
}

// Delete удаляет товар по ID
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*models.ItemResponse, error) {
	s.logger.Info("DeleteItem: id=%s", id)

	removed, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("DeleteItem: item id=%s not found", id)
			return nil, ErrNotFound
		}
		s.logger.Error("DeleteItem: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItem(removed), nil
}

// validateCreateRequest проверяет запрос и строит domain модель
func validateCreateRequest(req *models.CreateItemRequest) (*domain.InventoryItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxItemNameLength {
		return nil, fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxItemNameLength)
	}

	// Нечисловое количество сохраняется как 0
	quantity, err := strconv.Atoi(strings.TrimSpace(req.Quantity))
	if err != nil {
		quantity = 0
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	expiresOn, err := domain.ParseDate(strings.TrimSpace(req.ExpiresOn))
	if err != nil {
		return nil, fmt.Errorf("%w: expiresOn must be YYYY-MM-DD", ErrInvalidInput)
	}

	return &domain.InventoryItem{
		Name:      name,
		Quantity:  quantity,
		ExpiresOn: expiresOn,
	}, nil
}

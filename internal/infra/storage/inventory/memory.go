package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// MemoryRepository склад в памяти процесса, порядок списка совпадает с порядком добавления
type MemoryRepository struct {
	mu    sync.RWMutex
	items []*domain.InventoryItem
	now   func() time.Time
}

// NewMemoryRepository создает пустой склад
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make([]*domain.InventoryItem, 0),
		now:   time.Now,
	}
}

// Create добавляет товар
func (r *MemoryRepository) Create(_ context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	stored := *item
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.CreatedAt = r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, &stored)

	result := stored
	return &result, nil
}

// List возвращает все товары
func (r *MemoryRepository) List(_ context.Context) ([]*domain.InventoryItem, error) {
	return r.filter(func(*domain.InventoryItem) bool { return true }), nil
}

// ListCritical возвращает товары с критическим остатком
func (r *MemoryRepository) ListCritical(_ context.Context) ([]*domain.InventoryItem, error) {
	return r.filter((*domain.InventoryItem).IsCritical), nil
}

// Delete удаляет товар по ID и возвращает его
func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return item, nil
		}
	}

	return nil, ErrItemNotFound
}

func (r *MemoryRepository) filter(keep func(*domain.InventoryItem) bool) []*domain.InventoryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		if keep(item) {
			copied := *item
			result = append(result, &copied)
		}
	}
	return result
}

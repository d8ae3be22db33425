package account

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// MemoryRepository счета к оплате в памяти процесса
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts []*domain.Account
	now      func() time.Time
}

// NewMemoryRepository создает пустой репозиторий счетов
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		accounts: make([]*domain.Account, 0),
		now:      time.Now,
	}
}

// Create добавляет счёт
func (r *MemoryRepository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	stored := *account
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.Status == "" {
		stored.Status = domain.AccountActive
	}
	stored.CreatedAt = r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts = append(r.accounts, &stored)

	result := stored
	return &result, nil
}

// List возвращает все счета в порядке добавления
func (r *MemoryRepository) List(_ context.Context) ([]*domain.Account, error) {
	return r.filter(func(*domain.Account) bool { return true }), nil
}

// ListDue возвращает неоплаченные счета
func (r *MemoryRepository) ListDue(_ context.Context) ([]*domain.Account, error) {
	return r.filter((*domain.Account).IsDue), nil
}

// UpdateStatus меняет статус счёта
func (r *MemoryRepository) UpdateStatus(_ context.Context, id uuid.UUID, status domain.AccountStatus) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.ID == id {
			account.Status = status
			result := *account
			return &result, nil
		}
	}

	return nil, ErrAccountNotFound
}

// Delete удаляет счёт по ID и возвращает его
func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, account := range r.accounts {
		if account.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return account, nil
		}
	}

	return nil, ErrAccountNotFound
}

func (r *MemoryRepository) filter(keep func(*domain.Account) bool) []*domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		if keep(account) {
			copied := *account
			result = append(result, &copied)
		}
	}
	return result
}

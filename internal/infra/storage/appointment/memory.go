package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

// MemoryRepository журнал записей в памяти процесса.
// Порядок хранения совпадает с порядком вставки; позиции сдвигаются после удаления.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  []*domain.Appointment
	bySlot map[domain.SlotKey]uuid.UUID
	now    func() time.Time
}

// NewMemoryRepository создает пустой журнал записей
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items:  make([]*domain.Appointment, 0),
		bySlot: make(map[domain.SlotKey]uuid.UUID),
		now:    time.Now,
	}
}

// Create добавляет запись, если слот (дата, время) свободен.
// Проверка и вставка выполняются под одной блокировкой.
// Слот занимают только активные записи; неактивные добавляются без проверки.
func (r *MemoryRepository) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *appointment
	if stored.Status == "" {
		stored.Status = domain.StatusActive
	}

	key := stored.SlotKey()
	if stored.IsActive() {
		if _, taken := r.bySlot[key]; taken {
			return nil, ErrSlotTaken
		}
	}

	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.CreatedAt = r.now().UTC()

	r.items = append(r.items, &stored)
	if stored.IsActive() {
		r.bySlot[key] = stored.ID
	}

	created := stored
	return &created, nil
}

// GetByID получает запись по ID
func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, item := r.find(id)
	if item == nil {
		return nil, ErrAppointmentNotFound
	}

	found := *item
	return &found, nil
}

// List возвращает все записи в порядке вставки
func (r *MemoryRepository) List(_ context.Context) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(*domain.Appointment) bool { return true }), nil
}

// ListByClient возвращает записи клиента в порядке вставки
func (r *MemoryRepository) ListByClient(_ context.Context, clientName string) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(func(a *domain.Appointment) bool { return a.ClientName == clientName }), nil
}

// ListByDate возвращает записи на календарную дату
func (r *MemoryRepository) ListByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := date.Format(domain.DateFormat)
	return r.filter(func(a *domain.Appointment) bool { return a.Date.Format(domain.DateFormat) == day }), nil
}

// DeleteAt удаляет и возвращает запись на позиции position (с нуля)
func (r *MemoryRepository) DeleteAt(_ context.Context, position int) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if position < 0 || position >= len(r.items) {
		return nil, ErrAppointmentNotFound
	}

	return r.removeAt(position), nil
}

// Delete удаляет и возвращает запись по ID
func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	position, item := r.find(id)
	if item == nil {
		return nil, ErrAppointmentNotFound
	}

	return r.removeAt(position), nil
}

// Вспомогательные методы, вызываются под блокировкой

func (r *MemoryRepository) find(id uuid.UUID) (int, *domain.Appointment) {
	for i, item := range r.items {
		if item.ID == id {
			return i, item
		}
	}
	return -1, nil
}

func (r *MemoryRepository) removeAt(position int) *domain.Appointment {
	removed := r.items[position]
	r.items = append(r.items[:position], r.items[position+1:]...)

	key := removed.SlotKey()
	if r.bySlot[key] == removed.ID {
		delete(r.bySlot, key)
	}

	return removed
}

func (r *MemoryRepository) filter(keep func(*domain.Appointment) bool) []*domain.Appointment {
	result := make([]*domain.Appointment, 0, len(r.items))
	for _, item := range r.items {
		if keep(item) {
			copied := *item
			result = append(result, &copied)
		}
	}
	return result
}

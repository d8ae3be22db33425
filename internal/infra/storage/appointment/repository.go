package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	"github.com/m04kA/SMC-OpsPanel/pkg/psqlbuilder"
	"github.com/m04kA/SMC-OpsPanel/pkg/txmanager"
)

const (
	tableAppointments = "appointments"

	// pqUniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
	pqUniqueViolation = "23505"

	// pqSerializationFailure код ошибки PostgreSQL, когда SERIALIZABLE транзакция проиграла конкурентной
	pqSerializationFailure = "40001"

	// createAttempts сколько раз Create повторяет транзакцию после serialization failure
	createAttempts = 2
)

var appointmentColumns = []string{
	"id",
	"client_name",
	"service",
	"booking_date",
	"time_slot",
	"status",
	"created_at",
}

// Repository журнал записей в PostgreSQL.
// Реализует те же операции, что и MemoryRepository.
type Repository struct {
	db        DBExecutor
	txManager TransactionManager
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor, txManager TransactionManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create создает запись в сериализуемой транзакции.
// Сначала блокируем активную запись на тот же слот (FOR UPDATE), затем вставляем.
// Частичный уникальный индекс (booking_date, time_slot) WHERE status = 'active'
// страхует от гонки двух транзакций, которые обе не нашли строку.
// Проигравшая гонку транзакция получает 40001 и повторяется: повтор уже видит
// зафиксированную запись и возвращает ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	stored := *appointment
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	if stored.Status == "" {
		stored.Status = domain.StatusActive
	}

	var err error
	for attempt := 1; attempt <= createAttempts; attempt++ {
		err = r.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			if stored.IsActive() {
				taken, err := r.isSlotTaken(txCtx, stored.SlotKey())
				if err != nil {
					return err
				}
				if taken {
					return ErrSlotTaken
				}
			}

			return r.insert(txCtx, &stored)
		})
		if !isSerializationFailure(err) {
			break
		}
	}
	if isSerializationFailure(err) {
		// слот так и остался спорным после повторов
		return nil, fmt.Errorf("%w: Create: %v", ErrSlotTaken, err)
	}
	if err != nil {
		if errors.Is(err, ErrSlotTaken) || errors.Is(err, ErrBuildQuery) ||
			errors.Is(err, ErrExecQuery) || errors.Is(err, ErrScanRow) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Create: %v", ErrTransaction, err)
	}

	return &stored, nil
}

func (r *Repository) isSlotTaken(ctx context.Context, key domain.SlotKey) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From(tableAppointments).
		Where(squirrel.Eq{
			"booking_date": key.Date,
			"time_slot":    key.TimeSlot,
			"status":       domain.StatusActive,
		}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: isSlotTaken - build select query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: isSlotTaken - execute select: %w", ErrExecQuery, err)
	}

	return true, nil
}

func (r *Repository) insert(ctx context.Context, appointment *domain.Appointment) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableAppointments).
		Columns(
			"id",
			"client_name",
			"service",
			"booking_date",
			"time_slot",
			"status",
		).
		Values(
			appointment.ID,
			appointment.ClientName,
			appointment.Service,
			appointment.Date.Format(domain.DateFormat),
			appointment.TimeSlot,
			appointment.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: insert - execute insert: %w", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	return nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From(tableAppointments).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// List возвращает все записи в порядке вставки
func (r *Repository) List(ctx context.Context) ([]*domain.Appointment, error) {
	return r.list(ctx, "List", nil)
}

// ListByClient возвращает записи клиента в порядке вставки
func (r *Repository) ListByClient(ctx context.Context, clientName string) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListByClient", squirrel.Eq{"client_name": clientName})
}

// ListByDate возвращает записи на календарную дату
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListByDate", squirrel.Eq{"booking_date": date.Format(domain.DateFormat)})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From(tableAppointments).
		OrderBy("seq ASC")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

// DeleteAt удаляет запись на позиции position в порядке вставки.
// Выбор строки (FOR UPDATE) и удаление выполняются в одной транзакции.
func (r *Repository) DeleteAt(ctx context.Context, position int) (*domain.Appointment, error) {
	if position < 0 {
		return nil, ErrAppointmentNotFound
	}

	var removed *domain.Appointment

	err := r.txManager.Do(ctx, func(txCtx context.Context) error {
		executor := txmanager.GetExecutor(txCtx, r.db)

		query, args, err := psqlbuilder.Select("id").
			From(tableAppointments).
			OrderBy("seq ASC").
			Limit(1).
			Offset(uint64(position)).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: DeleteAt - build select query: %v", ErrBuildQuery, err)
		}

		var id uuid.UUID
		err = executor.QueryRowContext(txCtx, query, args...).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAppointmentNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: DeleteAt - execute select: %v", ErrExecQuery, err)
		}

		removed, err = r.Delete(txCtx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) || errors.Is(err, ErrBuildQuery) ||
			errors.Is(err, ErrExecQuery) || errors.Is(err, ErrScanRow) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: DeleteAt: %v", ErrTransaction, err)
	}

	return removed, nil
}

// Delete удаляет запись по ID и возвращает её
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableAppointments).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, client_name, service, booking_date, time_slot, status, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return appointment, nil
}

// isSerializationFailure сообщает, что в цепочке ошибок есть pq.Error с кодом 40001
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqSerializationFailure
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует строку в запись
func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appointment.ID,
		&appointment.ClientName,
		&appointment.Service,
		&appointment.Date,
		&appointment.TimeSlot,
		&appointment.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.Date = domain.DateOnly(appointment.Date)
	appointment.CreatedAt = createdAt.Time

	return &appointment, nil
}

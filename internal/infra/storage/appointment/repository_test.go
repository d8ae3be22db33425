package appointment

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	"github.com/m04kA/SMC-OpsPanel/pkg/txmanager"
	"github.com/m04kA/SMC-OpsPanel/pkg/types"
)

var selectedColumns = []string{"id", "client_name", "service", "booking_date", "time_slot", "status", "created_at"}

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db, txmanager.NewTransactionManager(db)), mock, db
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := newTestRepository(t)
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id FROM appointments WHERE booking_date = $1 AND status = $2 AND time_slot = $3 FOR UPDATE")).
		WithArgs("2026-03-10", "active", "10:00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WithArgs(sqlmock.AnyArg(), "Ana", "Corte", "2026-03-10", "10:00", "active").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), newAppointment("Ana", "10:00"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, domain.StatusActive, created.Status)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SlotTaken(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM appointments")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), newAppointment("Bruno", "10:00"))

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM appointments")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: pqUniqueViolation})
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), newAppointment("Bruno", "10:00"))

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SerializationFailureOnInsert(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	// первая транзакция проигрывает конкурентной вставке на том же слоте
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM appointments")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnError(&pq.Error{Code: pqSerializationFailure})
	mock.ExpectRollback()

	// повтор видит зафиксированную запись
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM appointments")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), newAppointment("Bruno", "10:00"))

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NotErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SerializationFailureOnCommit(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM appointments")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: pqSerializationFailure})

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM appointments")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), newAppointment("Bruno", "10:00"))

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NotErrorIs(t, err, ErrTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_RetrySucceeds(t *testing.T) {
	repo, mock, _ := newTestRepository(t)
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM appointments")).
		WillReturnError(&pq.Error{Code: pqSerializationFailure})
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM appointments")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), newAppointment("Ana", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_SerializationFailureExhausted(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	for i := 0; i < createAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM appointments")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
			WillReturnError(&pq.Error{Code: pqSerializationFailure})
		mock.ExpectRollback()
	}

	_, err := repo.Create(context.Background(), newAppointment("Bruno", "10:00"))

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_InactiveSkipsSlotCheck(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	cancelled := newAppointment("Ana", "10:00")
	cancelled.Status = domain.StatusCancelled

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WithArgs(sqlmock.AnyArg(), "Ana", "Corte", "2026-03-10", "10:00", "cancelled").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), cancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock, _ := newTestRepository(t)
	id1, id2 := uuid.New(), uuid.New()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, client_name, service, booking_date, time_slot, status, created_at FROM appointments ORDER BY seq ASC")).
		WillReturnRows(sqlmock.NewRows(selectedColumns).
			AddRow(id1.String(), "Ana", "Corte", testDate, "14:00:00", "active", createdAt).
			AddRow(id2.String(), "Bruno", "Barba", testDate, "09:00:00", "active", createdAt))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, id1, all[0].ID)
	assert.Equal(t, types.TimeString("14:00"), all[0].TimeSlot)
	assert.Equal(t, id2, all[1].ID)
	assert.Equal(t, types.TimeString("09:00"), all[1].TimeSlot)
	assert.Equal(t, testDate, all[1].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByClient(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE client_name = $1 ORDER BY seq ASC")).
		WithArgs("Ana").
		WillReturnRows(sqlmock.NewRows(selectedColumns))

	all, err := repo.ListByClient(context.Background(), "Ana")
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByDate(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE booking_date = $1 ORDER BY seq ASC")).
		WithArgs("2026-03-10").
		WillReturnRows(sqlmock.NewRows(selectedColumns).
			AddRow(uuid.New().String(), "Ana", "Corte", testDate, "10:00:00", "active", time.Now()))

	all, err := repo.ListByDate(context.Background(), testDate)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, types.TimeString("10:00"), all[0].TimeSlot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, _ := newTestRepository(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(selectedColumns))

	_, err := repo.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteAt(t *testing.T) {
	repo, mock, _ := newTestRepository(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id FROM appointments ORDER BY seq ASC LIMIT 1 OFFSET 2 FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM appointments WHERE id = $1 RETURNING")).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(selectedColumns).
			AddRow(id.String(), "Ana", "Corte", testDate, "11:00:00", "active", time.Now()))
	mock.ExpectCommit()

	removed, err := repo.DeleteAt(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, id, removed.ID)
	assert.Equal(t, types.TimeString("11:00"), removed.TimeSlot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteAt_OutOfRange(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM appointments ORDER BY seq ASC LIMIT 1 OFFSET 7 FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.DeleteAt(context.Background(), 7)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = repo.DeleteAt(context.Background(), -1)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock, _ := newTestRepository(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM appointments WHERE id = $1")).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(selectedColumns))

	_, err := repo.Delete(context.Background(), id)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

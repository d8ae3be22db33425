package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
	"github.com/m04kA/SMC-OpsPanel/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-OpsPanel/pkg/logger"
	"github.com/m04kA/SMC-OpsPanel/pkg/types"
)

type metricsStub struct {
	modes []string
}

func (m *metricsStub) ObserveDeletion(mode string) {
	m.modes = append(m.modes, mode)
}

type brokenRepository struct {
	*appointment.MemoryRepository
}

func (brokenRepository) List(context.Context) ([]*domain.Appointment, error) {
	return nil, errors.New("timeout")
}

var day = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func seed(t *testing.T, client string, slots ...types.TimeString) *appointment.MemoryRepository {
	t.Helper()

	ledger := appointment.NewMemoryRepository()
	for _, slot := range slots {
		_, err := ledger.Create(context.Background(), &domain.Appointment{
			ClientName: client,
			Service:    "Corte",
			Date:       day,
			TimeSlot:   slot,
		})
		require.NoError(t, err)
	}
	return ledger
}

func TestService_List(t *testing.T) {
	ledger := seed(t, "Ana", "14:00", "09:00", "11:00")
	svc := NewService(ledger, &metricsStub{}, logger.NewNop())

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Equal(t, 3, resp.Total)
	for i, item := range resp.Appointments {
		require.NotNil(t, item.Position)
		assert.Equal(t, i, *item.Position)
	}
	// порядок добавления, без сортировки по времени
	assert.Equal(t, "14:00", resp.Appointments[0].Time)
	assert.Equal(t, "09:00", resp.Appointments[1].Time)
	assert.Equal(t, "2026-03-10", resp.Appointments[0].Date)
	assert.Equal(t, "active", resp.Appointments[0].Status)
}

func TestService_List_Empty(t *testing.T) {
	svc := NewService(appointment.NewMemoryRepository(), &metricsStub{}, logger.NewNop())

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, resp.Appointments)
	assert.Zero(t, resp.Total)
}

func TestService_List_RepositoryError(t *testing.T) {
	svc := NewService(brokenRepository{appointment.NewMemoryRepository()}, &metricsStub{}, logger.NewNop())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ListForClient(t *testing.T) {
	ctx := context.Background()
	ledger := seed(t, "Ana", "09:00", "10:00")
	_, err := ledger.Create(ctx, &domain.Appointment{ClientName: "Bruno", Service: "Barba", Date: day, TimeSlot: "11:00"})
	require.NoError(t, err)

	svc := NewService(ledger, &metricsStub{}, logger.NewNop())

	resp, err := svc.ListForClient(ctx, "Bruno")
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Bruno", resp.Appointments[0].ClientName)
	assert.Nil(t, resp.Appointments[0].Position)

	resp, err = svc.ListForClient(ctx, "Carla")
	require.NoError(t, err)
	assert.Zero(t, resp.Total)

	_, err = svc.ListForClient(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_DeleteAt(t *testing.T) {
	ctx := context.Background()
	ledger := seed(t, "Ana", "09:00", "10:00", "11:00")
	metrics := &metricsStub{}
	svc := NewService(ledger, metrics, logger.NewNop())

	removed, err := svc.DeleteAt(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "10:00", removed.Time)

	resp, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "11:00", resp.Appointments[1].Time)
	assert.Equal(t, 1, *resp.Appointments[1].Position)

	assert.Equal(t, []string{deleteModePosition}, metrics.modes)
}

func TestService_DeleteAt_NotFound(t *testing.T) {
	ctx := context.Background()
	ledger := seed(t, "Ana", "09:00")
	metrics := &metricsStub{}
	svc := NewService(ledger, metrics, logger.NewNop())

	for _, position := range []int{-1, 1, 100} {
		_, err := svc.DeleteAt(ctx, position)
		assert.ErrorIs(t, err, ErrNotFound)
	}

	resp, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Empty(t, metrics.modes)
}

func TestService_DeleteAndGetByID(t *testing.T) {
	ctx := context.Background()
	ledger := seed(t, "Ana", "09:00")
	metrics := &metricsStub{}
	svc := NewService(ledger, metrics, logger.NewNop())

	all, err := ledger.List(ctx)
	require.NoError(t, err)
	id := all[0].ID

	found, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id.String(), found.ID)

	removed, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id.String(), removed.ID)

	_, err = svc.Delete(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{deleteModeID}, metrics.modes)
}

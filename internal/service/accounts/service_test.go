package accounts

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountRepo "github.com/m04kA/SMC-OpsPanel/internal/infra/storage/account"
	"github.com/m04kA/SMC-OpsPanel/internal/service/accounts/models"
	"github.com/m04kA/SMC-OpsPanel/pkg/logger"
)

func newTestService() *Service {
	return NewService(accountRepo.NewMemoryRepository(), logger.NewNop())
}

func createAccount(t *testing.T, svc *Service) uuid.UUID {
	t.Helper()

	resp, err := svc.Create(context.Background(), &models.CreateAccountRequest{
		Description: "Aluguel",
		Amount:      1500,
		DueDate:     "2026-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	return id
}

func TestService_Create_InvalidInput(t *testing.T) {
	svc := newTestService()

	requests := []*models.CreateAccountRequest{
		{Description: " ", Amount: 10, DueDate: "2026-03-31"},
		{Description: "Luz", Amount: -1, DueDate: "2026-03-31"},
		{Description: "Luz", Amount: 10, DueDate: "amanhã"},
	}

	for _, req := range requests {
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	id := createAccount(t, svc)

	resp, err := svc.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: "overdue"})
	require.NoError(t, err)
	assert.Equal(t, "overdue", resp.Status)

	resp, err = svc.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: "Paid"})
	require.NoError(t, err)
	assert.Equal(t, "paid", resp.Status)
}

func TestService_UpdateStatus_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	id := createAccount(t, svc)

	for _, status := range []string{"active", "cancelled", ""} {
		_, err := svc.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: status})
		assert.ErrorIs(t, err, ErrInvalidStatus, status)
	}

	_, err := svc.UpdateStatus(ctx, uuid.New(), &models.UpdateStatusRequest{Status: "paid"})
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Accounts, 1)
	assert.Equal(t, "active", list.Accounts[0].Status)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	id := createAccount(t, svc)

	removed, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Aluguel", removed.Description)

	_, err = svc.Delete(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

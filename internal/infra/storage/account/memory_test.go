package account

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OpsPanel/internal/domain"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	rent, err := repo.Create(ctx, &domain.Account{Description: "Aluguel", Amount: 1500})
	require.NoError(t, err)
	assert.Equal(t, domain.AccountActive, rent.Status)

	power, err := repo.Create(ctx, &domain.Account{Description: "Energia", Amount: 230.5})
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, power.ID, domain.AccountPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountPaid, updated.Status)

	_, err = repo.UpdateStatus(ctx, uuid.New(), domain.AccountPaid)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	due, err := repo.ListDue(ctx)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, rent.ID, due[0].ID)

	_, err = repo.Delete(ctx, rent.ID)
	require.NoError(t, err)
	_, err = repo.Delete(ctx, rent.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Energia", all[0].Description)
}

package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saad-anwar/custodial-vault-service/internal/models"
	"github.com/saad-anwar/custodial-vault-service/internal/storage/memory"
)

func op(id, account string, opType models.OperationType, amount string) models.Operation {
	return models.Operation{
		ID:        id,
		Type:      opType,
		Account:   account,
		Amount:    decimal.RequireFromString(amount),
		CreatedAt: time.Now().UTC(),
	}
}

func TestOperationStore_SaveAndGet(t *testing.T) {
	store := memory.NewOperationStore()
	ctx := context.Background()

	require.NoError(t, store.SaveOperation(ctx, op("op-1", "acct-x", models.OperationDeposit, "500")))
	require.NoError(t, store.SaveOperation(ctx, op("op-2", "acct-y", models.OperationDeposit, "200")))
	require.NoError(t, store.SaveOperation(ctx, op("op-3", "acct-x", models.OperationWithdraw, "100")))

	all, err := store.GetOperations()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "op-1", all[0].ID)
	assert.Equal(t, "op-3", all[2].ID)
}

func TestOperationStore_GetByAccount(t *testing.T) {
	store := memory.NewOperationStore()
	ctx := context.Background()

	require.NoError(t, store.SaveOperation(ctx, op("op-1", "acct-x", models.OperationDeposit, "500")))
	require.NoError(t, store.SaveOperation(ctx, op("op-2", "acct-y", models.OperationDeposit, "200")))

	xOps, err := store.GetOperationsByAccount("acct-x")
	require.NoError(t, err)
	require.Len(t, xOps, 1)
	assert.Equal(t, "op-1", xOps[0].ID)

	none, err := store.GetOperationsByAccount("acct-z")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOperationStore_GetReturnsCopy(t *testing.T) {
	store := memory.NewOperationStore()
	ctx := context.Background()
	require.NoError(t, store.SaveOperation(ctx, op("op-1", "acct-x", models.OperationDeposit, "500")))

	first, err := store.GetOperations()
	require.NoError(t, err)
	first[0].ID = "mutated"

	second, err := store.GetOperations()
	require.NoError(t, err)
	assert.Equal(t, "op-1", second[0].ID)
}

package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saad-anwar/custodial-vault-service/internal/transfer/memory"
)

func TestTransferor_RecordsTransfers(t *testing.T) {
	transferor := memory.New()
	ctx := context.Background()

	require.NoError(t, transferor.Transfer(ctx, "acct-x", decimal.RequireFromString("100")))
	require.NoError(t, transferor.Transfer(ctx, "acct-y", decimal.RequireFromString("25")))

	transfers := transferor.Transfers()
	require.Len(t, transfers, 2)
	assert.Equal(t, "acct-x", transfers[0].Account)
	assert.Equal(t, "100", transfers[0].Amount.String())
	assert.Equal(t, "acct-y", transfers[1].Account)
	assert.False(t, transfers[0].SentAt.IsZero())
}

func TestTransferor_TransfersReturnsCopy(t *testing.T) {
	transferor := memory.New()
	require.NoError(t, transferor.Transfer(context.Background(), "acct-x", decimal.NewFromInt(1)))

	first := transferor.Transfers()
	first[0].Account = "mutated"

	second := transferor.Transfers()
	assert.Equal(t, "acct-x", second[0].Account)
}

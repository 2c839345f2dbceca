package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// FundsTransferor moves value out of the vault to an account. A returned
// error means no value moved and the caller must roll back its bookkeeping.
type FundsTransferor interface {
	Transfer(ctx context.Context, account string, amount decimal.Decimal) error
}

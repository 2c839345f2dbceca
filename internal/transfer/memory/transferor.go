package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	interfaces "github.com/saad-anwar/custodial-vault-service/internal/interfaces"
)

// Transfer is one outbound movement of value recorded by the in-process
// transferor.
type Transfer struct {
	Account string
	Amount  decimal.Decimal
	SentAt  time.Time
}

// Transferor settles withdrawals in process and keeps a record of every
// outbound transfer. It is the default transfer backend when no settlement
// API is configured.
type Transferor struct {
	mu        sync.Mutex
	transfers []Transfer
}

func New() *Transferor {
	return &Transferor{
		transfers: make([]Transfer, 0),
	}
}

func (t *Transferor) Transfer(ctx context.Context, account string, amount decimal.Decimal) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.transfers = append(t.transfers, Transfer{
		Account: account,
		Amount:  amount,
		SentAt:  time.Now().UTC(),
	})
	return nil
}

// Transfers returns a copy of everything sent so far.
func (t *Transferor) Transfers() []Transfer {
	t.mu.Lock()
	defer t.mu.Unlock()

	copied := make([]Transfer, len(t.transfers))
	copy(copied, t.transfers)
	return copied
}

var _ interfaces.FundsTransferor = (*Transferor)(nil)

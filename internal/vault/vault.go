package vault

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/saad-anwar/custodial-vault-service/internal/interfaces"
	"github.com/saad-anwar/custodial-vault-service/internal/models"
	"github.com/saad-anwar/custodial-vault-service/internal/models/events"
)

// Kafka topics for the one-way operation notifications.
const (
	TopicDeposits    = "vault.deposits"
	TopicWithdrawals = "vault.withdrawals"
)

// Vault is a single-instance custodial ledger. It accepts deposits into
// per-account balances under a fixed capacity ceiling and releases value back
// to accounts under a fixed per-withdrawal ceiling.
//
// Both limits and the owner identity are set once at construction and never
// change. The owner is recorded for reporting only; no operation is gated on
// it.
type Vault struct {
	withdrawLimit decimal.Decimal
	bankCap       decimal.Decimal
	owner         string

	store      interfaces.OperationStore // audit journal, may be nil
	transferor interfaces.FundsTransferor
	publisher  interfaces.EventPublisher // may be nil
	logger     *zap.Logger

	// guardMu protects only the locked flag. A reentrant call fails fast on
	// the flag instead of deadlocking on the state lock below.
	guardMu sync.Mutex
	locked  bool

	mu             sync.RWMutex
	balances       map[string]decimal.Decimal
	totalDeposited decimal.Decimal
	depositCount   uint64
	withdrawCount  uint64
}

// NewVault validates the ceilings and builds a vault. The transferor is
// required; the journal store and event publisher may be nil, in which case
// those sinks are skipped.
func NewVault(
	withdrawLimit, bankCap decimal.Decimal,
	owner string,
	store interfaces.OperationStore,
	transferor interfaces.FundsTransferor,
	publisher interfaces.EventPublisher,
	logger *zap.Logger,
) (*Vault, error) {
	if !withdrawLimit.IsPositive() {
		return nil, ErrInvalidWithdrawLimit
	}
	if !bankCap.IsPositive() {
		return nil, ErrInvalidBankCap
	}
	if transferor == nil {
		return nil, errors.New("vault: funds transferor is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Vault{
		withdrawLimit: withdrawLimit,
		bankCap:       bankCap,
		owner:         owner,
		store:         store,
		transferor:    transferor,
		publisher:     publisher,
		logger:        logger,
		balances:      make(map[string]decimal.Decimal),
	}, nil
}

// acquire takes the reentrancy guard shared by Deposit and Withdraw.
func (v *Vault) acquire() error {
	v.guardMu.Lock()
	defer v.guardMu.Unlock()

	if v.locked {
		return ErrReentrancyDetected
	}
	v.locked = true
	return nil
}

func (v *Vault) release() {
	v.guardMu.Lock()
	v.locked = false
	v.guardMu.Unlock()
}

// Deposit credits amount to the account's balance. It fails with
// *ExceedsBankCapError when the deposit would push the total held value past
// the capacity ceiling, and with ErrReentrancyDetected when another operation
// is in flight. A zero amount is accepted and counted like any other deposit.
// On any failure no state changes.
func (v *Vault) Deposit(ctx context.Context, account string, amount decimal.Decimal) error {
	if err := v.acquire(); err != nil {
		return err
	}
	defer v.release()

	if amount.IsNegative() {
		return &NegativeAmountError{Amount: amount}
	}

	v.mu.Lock()
	attempted := v.totalDeposited.Add(amount)
	if attempted.GreaterThan(v.bankCap) {
		available := v.bankCap.Sub(v.totalDeposited)
		v.mu.Unlock()
		return &ExceedsBankCapError{Attempted: attempted, Available: available}
	}

	// A missing key reads as a zero decimal, so this also materializes an
	// explicit zero entry on a zero-value deposit.
	v.balances[account] = v.balances[account].Add(amount)
	v.totalDeposited = attempted
	v.depositCount++
	v.mu.Unlock()

	v.journal(ctx, models.OperationDeposit, account, amount)
	v.publish(TopicDeposits, events.DepositRecorded{
		EventID:    uuid.New().String(),
		Account:    account,
		Amount:     amount,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// Withdraw releases amount from the account's balance back to the account.
// Checks run in order: per-withdrawal limit, then balance. Effects are
// committed before the outbound transfer is attempted; if the transfer fails
// every effect is restored and *TransferFailedError is returned, so the call
// is atomic from the outside. The state lock is held across the transfer,
// which keeps the staged values invisible to readers; a reentrant call from
// inside the transfer fails on the guard flag before touching that lock.
func (v *Vault) Withdraw(ctx context.Context, account string, amount decimal.Decimal) error {
	if err := v.acquire(); err != nil {
		return err
	}
	defer v.release()

	if amount.IsNegative() {
		return &NegativeAmountError{Amount: amount}
	}

	v.mu.Lock()
	if amount.GreaterThan(v.withdrawLimit) {
		v.mu.Unlock()
		return &ExceedsWithdrawLimitError{Requested: amount, Limit: v.withdrawLimit}
	}

	balance := v.balances[account]
	if balance.LessThan(amount) {
		v.mu.Unlock()
		return &InsufficientBalanceError{Available: balance, Required: amount}
	}

	prevTotal := v.totalDeposited
	newBalance := balance.Sub(amount)
	newTotal := prevTotal.Sub(amount)
	if newBalance.IsNegative() || newTotal.IsNegative() {
		// Cannot happen after the checks above; a negative here means the
		// books are corrupt and continuing would compound the damage.
		v.mu.Unlock()
		panic("vault: balance underflow on withdrawal")
	}

	v.balances[account] = newBalance
	v.totalDeposited = newTotal
	v.withdrawCount++

	if err := v.transferor.Transfer(ctx, account, amount); err != nil {
		v.balances[account] = balance
		v.totalDeposited = prevTotal
		v.withdrawCount--
		v.mu.Unlock()
		return &TransferFailedError{Account: account, Amount: amount, Err: err}
	}
	v.mu.Unlock()

	v.journal(ctx, models.OperationWithdraw, account, amount)
	v.publish(TopicWithdrawals, events.WithdrawalCompleted{
		EventID:    uuid.New().String(),
		Account:    account,
		Amount:     amount,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// BalanceOf returns the account's current balance. Unknown accounts read as
// zero.
func (v *Vault) BalanceOf(account string) decimal.Decimal {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.balances[account]
}

// TotalDeposits returns the sum of all balances currently held.
func (v *Vault) TotalDeposits() decimal.Decimal {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.totalDeposited
}

// DepositCount returns the number of completed deposits.
func (v *Vault) DepositCount() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.depositCount
}

// WithdrawCount returns the number of completed withdrawals.
func (v *Vault) WithdrawCount() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.withdrawCount
}

func (v *Vault) Owner() string { return v.owner }

func (v *Vault) WithdrawLimit() decimal.Decimal { return v.withdrawLimit }

func (v *Vault) BankCap() decimal.Decimal { return v.bankCap }

// Operations returns the full audit journal.
func (v *Vault) Operations() ([]models.Operation, error) {
	if v.store == nil {
		return []models.Operation{}, nil
	}
	return v.store.GetOperations()
}

// OperationsByAccount returns the audit journal filtered to one account.
func (v *Vault) OperationsByAccount(account string) ([]models.Operation, error) {
	if v.store == nil {
		return []models.Operation{}, nil
	}
	return v.store.GetOperationsByAccount(account)
}

// journal appends a committed operation to the audit store. The journal is a
// one-way sink: a failed append is logged and never unwinds the operation.
func (v *Vault) journal(ctx context.Context, opType models.OperationType, account string, amount decimal.Decimal) {
	if v.store == nil {
		return
	}

	op := models.Operation{
		ID:        uuid.New().String(),
		Type:      opType,
		Account:   account,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	if err := v.store.SaveOperation(ctx, op); err != nil {
		v.logger.Warn("journal append failed",
			zap.String("operation", string(opType)),
			zap.String("account", account),
			zap.Error(err),
		)
	}
}

// publish emits a committed-operation event. Best effort, same policy as the
// journal.
func (v *Vault) publish(topic string, event any) {
	if v.publisher == nil {
		return
	}
	if err := v.publisher.Publish(topic, event); err != nil {
		v.logger.Warn("event publish failed",
			zap.String("topic", topic),
			zap.Error(err),
		)
	}
}

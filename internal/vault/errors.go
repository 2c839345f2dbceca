package vault

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidWithdrawLimit is returned by NewVault when the per-withdrawal
	// ceiling is zero or negative.
	ErrInvalidWithdrawLimit = errors.New("withdraw limit must be positive")

	// ErrInvalidBankCap is returned by NewVault when the capacity ceiling is
	// zero or negative.
	ErrInvalidBankCap = errors.New("bank cap must be positive")

	// ErrReentrancyDetected is returned when a deposit or withdrawal is
	// attempted while another one is still in flight on the same vault.
	ErrReentrancyDetected = errors.New("reentrant call detected")
)

// ExceedsBankCapError is returned by Deposit when accepting the amount would
// push the total held value past the capacity ceiling.
type ExceedsBankCapError struct {
	Attempted decimal.Decimal // total the deposit would have produced
	Available decimal.Decimal // remaining capacity before the cap
}

func (e *ExceedsBankCapError) Error() string {
	return fmt.Sprintf("deposit exceeds bank cap: attempted total %s, only %s available", e.Attempted, e.Available)
}

// ExceedsWithdrawLimitError is returned by Withdraw when the requested amount
// is above the per-withdrawal ceiling.
type ExceedsWithdrawLimitError struct {
	Requested decimal.Decimal
	Limit     decimal.Decimal
}

func (e *ExceedsWithdrawLimitError) Error() string {
	return fmt.Sprintf("withdrawal of %s exceeds per-withdrawal limit of %s", e.Requested, e.Limit)
}

// InsufficientBalanceError is returned by Withdraw when the account holds
// less than the requested amount.
type InsufficientBalanceError struct {
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: %s available, %s required", e.Available, e.Required)
}

// NegativeAmountError is returned when a caller supplies a negative amount.
// Amounts are unsigned quantities carried in a signed decimal type, so the
// boundary has to reject what the type system cannot.
type NegativeAmountError struct {
	Amount decimal.Decimal
}

func (e *NegativeAmountError) Error() string {
	return fmt.Sprintf("amount must not be negative, got %s", e.Amount)
}

// TransferFailedError is returned by Withdraw when the outbound value
// transfer fails. The vault's bookkeeping has already been rolled back.
type TransferFailedError struct {
	Account string
	Amount  decimal.Decimal
	Err     error
}

func (e *TransferFailedError) Error() string {
	return fmt.Sprintf("transfer of %s to account %s failed: %v", e.Amount, e.Account, e.Err)
}

func (e *TransferFailedError) Unwrap() error {
	return e.Err
}

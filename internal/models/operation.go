package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OperationType string

const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
)

// Operation is a single committed vault operation recorded in the audit journal
type Operation struct {
	ID        string          `json:"id"`         // unique identifier
	Type      OperationType   `json:"type"`       // deposit or withdraw
	Account   string          `json:"account"`    // account the operation was made against
	Amount    decimal.Decimal `json:"amount"`     // value moved, never negative
	CreatedAt time.Time       `json:"created_at"` // timestamp
}

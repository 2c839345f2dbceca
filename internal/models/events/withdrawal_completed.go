package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalCompleted struct {
	EventID    string          `json:"event_id"`
	Account    string          `json:"account"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}

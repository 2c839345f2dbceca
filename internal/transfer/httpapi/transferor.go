package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	interfaces "github.com/saad-anwar/custodial-vault-service/internal/interfaces"
)

// Transferor releases value by posting a transfer instruction to an external
// settlement API. Any transport error or non-2xx response counts as a failed
// transfer.
type Transferor struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string) *Transferor {
	return &Transferor{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type transferInstruction struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

func (t *Transferor) Transfer(ctx context.Context, account string, amount decimal.Decimal) error {
	body, err := json.Marshal(transferInstruction{
		Account: account,
		Amount:  amount,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/transfers", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("settlement api returned status %d", resp.StatusCode)
	}
	return nil
}

var _ interfaces.FundsTransferor = (*Transferor)(nil)

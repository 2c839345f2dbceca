package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saad-anwar/custodial-vault-service/internal/transfer/httpapi"
)

func TestTransfer_PostsInstruction(t *testing.T) {
	var got struct {
		Account string          `json:"account"`
		Amount  decimal.Decimal `json:"amount"`
	}
	var path string

	settlement := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer settlement.Close()

	transferor := httpapi.New(settlement.URL)
	err := transferor.Transfer(context.Background(), "acct-x", decimal.RequireFromString("100"))

	require.NoError(t, err)
	assert.Equal(t, "/transfers", path)
	assert.Equal(t, "acct-x", got.Account)
	assert.Equal(t, "100", got.Amount.String())
}

func TestTransfer_NonSuccessStatusFails(t *testing.T) {
	settlement := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer settlement.Close()

	transferor := httpapi.New(settlement.URL)
	err := transferor.Transfer(context.Background(), "acct-x", decimal.NewFromInt(1))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestTransfer_UnreachableAPIFails(t *testing.T) {
	settlement := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	settlement.Close()

	transferor := httpapi.New(settlement.URL)
	err := transferor.Transfer(context.Background(), "acct-x", decimal.NewFromInt(1))
	require.Error(t, err)
}

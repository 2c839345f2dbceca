package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/saad-anwar/custodial-vault-service/internal/vault"
)

type Handler struct {
	vault  *vault.Vault
	logger *zap.Logger
}

func NewHandler(v *vault.Vault, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		vault:  v,
		logger: logger,
	}
}

type operationRequest struct {
	Account string          `json:"account" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Deposit(c *gin.Context) {
	var req operationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.vault.Deposit(c.Request.Context(), req.Account, req.Amount); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "deposit recorded",
		"account": req.Account,
		"balance": h.vault.BalanceOf(req.Account),
	})
}

func (h *Handler) Withdraw(c *gin.Context) {
	var req operationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.vault.Withdraw(c.Request.Context(), req.Account, req.Amount); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "withdrawal completed",
		"account": req.Account,
		"balance": h.vault.BalanceOf(req.Account),
	})
}

func (h *Handler) Balance(c *gin.Context) {
	account := c.Param("account")
	c.JSON(http.StatusOK, gin.H{
		"account": account,
		"balance": h.vault.BalanceOf(account),
	})
}

func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"owner":           h.vault.Owner(),
		"withdraw_limit":  h.vault.WithdrawLimit(),
		"bank_cap":        h.vault.BankCap(),
		"total_deposited": h.vault.TotalDeposits(),
		"deposit_count":   h.vault.DepositCount(),
		"withdraw_count":  h.vault.WithdrawCount(),
	})
}

func (h *Handler) Operations(c *gin.Context) {
	account := c.Query("account")

	var err error
	var operations any
	if account != "" {
		operations, err = h.vault.OperationsByAccount(account)
	} else {
		operations, err = h.vault.Operations()
	}
	if err != nil {
		h.logger.Error("journal read failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read operations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"operations": operations})
}

// writeError maps the vault's typed errors onto HTTP statuses, carrying the
// diagnostic fields through to the response body.
func (h *Handler) writeError(c *gin.Context, err error) {
	var (
		negativeErr *vault.NegativeAmountError
		capErr      *vault.ExceedsBankCapError
		limitErr    *vault.ExceedsWithdrawLimitError
		balanceErr  *vault.InsufficientBalanceError
		transferErr *vault.TransferFailedError
	)

	switch {
	case errors.As(err, &negativeErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  err.Error(),
			"amount": negativeErr.Amount,
		})
	case errors.As(err, &capErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     err.Error(),
			"attempted": capErr.Attempted,
			"available": capErr.Available,
		})
	case errors.As(err, &limitErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     err.Error(),
			"requested": limitErr.Requested,
			"limit":     limitErr.Limit,
		})
	case errors.As(err, &balanceErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     err.Error(),
			"available": balanceErr.Available,
			"required":  balanceErr.Required,
		})
	case errors.Is(err, vault.ErrReentrancyDetected):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &transferErr):
		h.logger.Error("outbound transfer failed",
			zap.String("account", transferErr.Account),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		h.logger.Error("operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

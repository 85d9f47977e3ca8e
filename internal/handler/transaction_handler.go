package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/quickquid/quickquid-api/internal/logger"
	"github.com/quickquid/quickquid-api/internal/middleware"
	"github.com/quickquid/quickquid-api/internal/models"
	"github.com/quickquid/quickquid-api/internal/service"
)

// TransferExecutor defines the write-side operations used by TransactionHandler.
type TransferExecutor interface {
	Execute(ctx context.Context, in service.TransferInput) (*models.Transaction, error)
}

// HistoryQuerier defines the read-side operations used by TransactionHandler.
type HistoryQuerier interface {
	AccountHistory(ctx context.Context, accountNumber string) ([]models.TransactionView, error)
}

type TransactionHandler struct {
	transfers TransferExecutor
	history   HistoryQuerier
}

type CreateTransactionRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	SenderAccount     string          `json:"senderAccount" validate:"required"`
	ReceiverAccount   string          `json:"receiverAccount" validate:"required"`
	OriginatingBranch *int64          `json:"originatingBranch"`
}

func NewTransactionHandler(transfers TransferExecutor, history HistoryQuerier) *TransactionHandler {
	return &TransactionHandler{transfers: transfers, history: history}
}

// CreateTransaction executes a transfer. A 201 response reflects a terminal
// outcome in the transaction's status field; insufficient funds comes back as
// 201 with status FAILED, not as an error.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}
	if !req.Amount.IsPositive() {
		middleware.RespondWithError(c, http.StatusBadRequest, "Amount must be greater than zero")
		return
	}

	transaction, err := h.transfers.Execute(c.Request.Context(), service.TransferInput{
		Amount:              req.Amount,
		Description:         req.Description,
		SenderAccount:       req.SenderAccount,
		ReceiverAccount:     req.ReceiverAccount,
		OriginatingBranchID: req.OriginatingBranch,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSenderNotFound):
			middleware.RespondWithError(c, http.StatusBadRequest, "Sender account not found")
		case errors.Is(err, models.ErrReceiverNotFound):
			middleware.RespondWithError(c, http.StatusBadRequest, "Receiver account not found")
		case errors.Is(err, models.ErrSelfTransfer):
			middleware.RespondWithError(c, http.StatusBadRequest, "Sender and receiver must be different accounts")
		case errors.Is(err, models.ErrInvalidAmount):
			middleware.RespondWithError(c, http.StatusBadRequest, "Amount must be greater than zero")
		default:
			log := logger.FromContext(c.Request.Context())
			log.Error().Err(err).Msg("failed to execute transfer")
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create transaction")
		}
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

func (h *TransactionHandler) ListAccountTransactions(c *gin.Context) {
	accountNumber := c.Query("accountNumber")
	if accountNumber == "" {
		middleware.RespondWithError(c, http.StatusBadRequest, "accountNumber query parameter is required")
		return
	}

	views, err := h.history.AccountHistory(c.Request.Context(), accountNumber)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			middleware.RespondWithError(c, http.StatusBadRequest, "Account not found")
			return
		}
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Msg("failed to list account transactions")
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list transactions")
		return
	}
	if views == nil {
		views = []models.TransactionView{}
	}
	c.JSON(http.StatusOK, views)
}

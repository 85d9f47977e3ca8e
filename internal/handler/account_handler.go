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

// AccountOpener defines the operations used by AccountHandler.
type AccountOpener interface {
	OpenAccount(ctx context.Context, in service.OpenAccountInput) (*models.Account, error)
}

type AccountHandler struct {
	opener AccountOpener
}

type CreateAccountRequest struct {
	AccountNumber string          `json:"accountNumber" validate:"required"`
	AccountType   string          `json:"accountType" validate:"required,oneof=SAVINGS LOAN CREDIT_CARD CURRENT_ACCOUNT"`
	Currency      string          `json:"currency" validate:"required,len=3"`
	FirstName     string          `json:"firstName" validate:"required"`
	LastName      string          `json:"lastName" validate:"required"`
	BankName      string          `json:"bankName" validate:"required"`
	Balance       decimal.Decimal `json:"balance"`
}

func NewAccountHandler(opener AccountOpener) *AccountHandler {
	return &AccountHandler{opener: opener}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}
	if req.Balance.IsNegative() {
		middleware.RespondWithError(c, http.StatusBadRequest, "Balance must not be negative")
		return
	}

	account, err := h.opener.OpenAccount(c.Request.Context(), service.OpenAccountInput{
		AccountNumber: req.AccountNumber,
		AccountType:   models.AccountType(req.AccountType),
		Currency:      req.Currency,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		BankName:      req.BankName,
		Balance:       req.Balance,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPersonNotFound):
			middleware.RespondWithError(c, http.StatusBadRequest, "Person not found")
		case errors.Is(err, models.ErrBranchNotFound):
			middleware.RespondWithError(c, http.StatusBadRequest, "Bank branch not found")
		default:
			log := logger.FromContext(c.Request.Context())
			log.Error().Err(err).Msg("failed to open account")
			middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		}
		return
	}

	c.JSON(http.StatusCreated, account)
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickquid/quickquid-api/internal/logger"
	"github.com/quickquid/quickquid-api/internal/middleware"
	"github.com/quickquid/quickquid-api/internal/models"
)

// BranchRegistrar defines the write-side operations used by BankHandler.
type BranchRegistrar interface {
	RegisterBranch(ctx context.Context, bankName, branchName, bankAddress string) (*models.BankBranch, error)
}

// BranchDirectory defines the read-side operations used by BankHandler.
type BranchDirectory interface {
	ListBranches(ctx context.Context) ([]models.BankBranch, error)
}

type BankHandler struct {
	registrar BranchRegistrar
	directory BranchDirectory
}

type CreateBranchRequest struct {
	BankName    string `json:"bankName" validate:"required"`
	BranchName  string `json:"branchName" validate:"required"`
	BankAddress string `json:"bankAddress"`
}

func NewBankHandler(registrar BranchRegistrar, directory BranchDirectory) *BankHandler {
	return &BankHandler{registrar: registrar, directory: directory}
}

func (h *BankHandler) CreateBranch(c *gin.Context) {
	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	branch, err := h.registrar.RegisterBranch(c.Request.Context(), req.BankName, req.BranchName, req.BankAddress)
	if err != nil {
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Msg("failed to register branch")
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create bank branch")
		return
	}

	c.JSON(http.StatusCreated, branch)
}

func (h *BankHandler) ListBranches(c *gin.Context) {
	branches, err := h.directory.ListBranches(c.Request.Context())
	if err != nil {
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Msg("failed to list branches")
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list bank branches")
		return
	}
	if branches == nil {
		branches = []models.BankBranch{}
	}
	c.JSON(http.StatusOK, branches)
}

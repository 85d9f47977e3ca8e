package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickquid/quickquid-api/internal/logger"
	"github.com/quickquid/quickquid-api/internal/middleware"
	"github.com/quickquid/quickquid-api/internal/models"
)

// PersonRegistrar defines the operations used by PersonHandler.
type PersonRegistrar interface {
	RegisterPerson(ctx context.Context, firstName, lastName string) (*models.Person, error)
}

type PersonHandler struct {
	registrar PersonRegistrar
}

type CreatePersonRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

func NewPersonHandler(registrar PersonRegistrar) *PersonHandler {
	return &PersonHandler{registrar: registrar}
}

func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	person, err := h.registrar.RegisterPerson(c.Request.Context(), req.FirstName, req.LastName)
	if err != nil {
		log := logger.FromContext(c.Request.Context())
		log.Error().Err(err).Msg("failed to register person")
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create person")
		return
	}

	c.JSON(http.StatusCreated, person)
}

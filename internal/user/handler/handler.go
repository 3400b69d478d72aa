// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fivekicks/football/internal/middleware"
	userModel "github.com/fivekicks/football/internal/user/model"
	"github.com/fivekicks/football/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /users/register request.
func (h *Handler) Register(c *gin.Context) {
	var req userModel.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, userModel.ErrEmailTaken):
			errorResponse(c, "EMAIL_EXISTS", "email is already registered", http.StatusConflict)
		case errors.Is(err, userModel.ErrInvalidEmail):
			errorResponse(c, "INVALID_REQUEST", "a valid email is required", http.StatusBadRequest)
		case errors.Is(err, userModel.ErrInvalidFullName):
			errorResponse(c, "INVALID_REQUEST", "full_name is required", http.StatusBadRequest)
		default:
			h.logger.Errorw("error registering user", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Me handles GET /users/me request.
func (h *Handler) Me(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "missing identity", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.GetByEmail(c.Request.Context(), identity.Email)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			errorResponse(c, "USER_NOT_FOUND", "user not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error getting user", "email", identity.Email, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

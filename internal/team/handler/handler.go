// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fivekicks/football/internal/middleware"
	teamModel "github.com/fivekicks/football/internal/team/model"
	"github.com/fivekicks/football/internal/team/service"
	userModel "github.com/fivekicks/football/internal/user/model"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /teams request.
func (h *Handler) CreateTeam(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "missing identity", http.StatusUnauthorized)
		return
	}

	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateTeam(c.Request.Context(), req.Name, identity.Email)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrTeamNameTaken):
			errorResponse(c, "TEAM_EXISTS", "team name already exists", http.StatusConflict)
		case errors.Is(err, teamModel.ErrInvalidTeamName):
			errorResponse(c, "INVALID_REQUEST", "name is required", http.StatusBadRequest)
		case errors.Is(err, userModel.ErrUserNotFound):
			errorResponse(c, "USER_NOT_FOUND", "user not found", http.StatusNotFound)
		default:
			h.logger.Errorw("error creating team", "name", req.Name, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// MyTeams handles GET /teams/my request.
func (h *Handler) MyTeams(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "missing identity", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.MyTeams(c.Request.Context(), identity.Email)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			errorResponse(c, "USER_NOT_FOUND", "user not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error listing teams", "email", identity.Email, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": resp})
}

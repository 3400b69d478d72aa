// Package handler provides HTTP handlers for tournament endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/fivekicks/football/internal/team/model"
	tournamentModel "github.com/fivekicks/football/internal/tournament/model"
	"github.com/fivekicks/football/internal/tournament/service"
)

// Handler handles HTTP requests for tournament endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new tournament handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// tournamentID parses the :id path parameter.
func tournamentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid tournament id", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

// List handles GET /tournaments request.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing tournaments", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tournaments": resp})
}

// Create handles POST /tournaments request.
func (h *Handler) Create(c *gin.Context) {
	var req tournamentModel.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tournamentModel.ErrInvalidName),
			errors.Is(err, tournamentModel.ErrInvalidDates),
			errors.Is(err, tournamentModel.ErrInvalidCapacity):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("error creating tournament", "name", req.Name, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Join handles POST /tournaments/:id/join request.
func (h *Handler) Join(c *gin.Context) {
	id, ok := tournamentID(c)
	if !ok {
		return
	}

	var req tournamentModel.JoinTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "team_id is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Join(c.Request.Context(), id, req.TeamID)
	if err != nil {
		switch {
		case errors.Is(err, tournamentModel.ErrTournamentNotFound):
			errorResponse(c, "NOT_FOUND", "tournament not found", http.StatusNotFound)
		case errors.Is(err, teamModel.ErrTeamNotFound):
			errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
		case errors.Is(err, tournamentModel.ErrAlreadyJoined):
			errorResponse(c, "ALREADY_JOINED", "team already joined", http.StatusConflict)
		case errors.Is(err, tournamentModel.ErrTournamentFull):
			errorResponse(c, "TOURNAMENT_FULL", "tournament is full", http.StatusConflict)
		case errors.Is(err, tournamentModel.ErrRegistrationClosed):
			errorResponse(c, "REGISTRATION_CLOSED", "tournament registration is not open", http.StatusConflict)
		default:
			h.logger.Errorw("error joining tournament",
				"tournament_id", id,
				"team_id", req.TeamID,
				"error", err,
			)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Advance handles POST /tournaments/:id/advance request.
func (h *Handler) Advance(c *gin.Context) {
	id, ok := tournamentID(c)
	if !ok {
		return
	}

	var req tournamentModel.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "status is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Advance(c.Request.Context(), id, tournamentModel.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, tournamentModel.ErrTournamentNotFound):
			errorResponse(c, "NOT_FOUND", "tournament not found", http.StatusNotFound)
		case errors.Is(err, tournamentModel.ErrInvalidTransition):
			errorResponse(c, "INVALID_TRANSITION", "illegal status transition", http.StatusConflict)
		default:
			h.logger.Errorw("error advancing tournament", "tournament_id", id, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Package handler provides HTTP handlers for match endpoints.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	matchModel "github.com/fivekicks/football/internal/match/model"
	"github.com/fivekicks/football/internal/match/service"
	teamModel "github.com/fivekicks/football/internal/team/model"
)

// Handler handles HTTP requests for match endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new match handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// matchID parses the :id path parameter.
func matchID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid match id", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

// Schedule handles POST /matches request.
func (h *Handler) Schedule(c *gin.Context) {
	var req matchModel.ScheduleMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Schedule(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, matchModel.ErrSameTeam):
			errorResponse(c, "INVALID_TEAMS", "home and away teams must be distinct", http.StatusBadRequest)
		case errors.Is(err, teamModel.ErrTeamNotFound):
			errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
		default:
			h.logger.Errorw("error scheduling match", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /matches/:id request.
func (h *Handler) Get(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, matchModel.ErrMatchNotFound) {
			errorResponse(c, "NOT_FOUND", "match not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error getting match", "match_id", id, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Start handles POST /matches/:id/start request.
func (h *Handler) Start(c *gin.Context) {
	h.applyTransition(c, h.service.Start)
}

// Cancel handles POST /matches/:id/cancel request.
func (h *Handler) Cancel(c *gin.Context) {
	h.applyTransition(c, h.service.Cancel)
}

func (h *Handler) applyTransition(
	c *gin.Context,
	fn func(ctx context.Context, id uint) (*matchModel.MatchResponse, error),
) {
	id, ok := matchID(c)
	if !ok {
		return
	}

	resp, err := fn(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, matchModel.ErrMatchNotFound):
			errorResponse(c, "NOT_FOUND", "match not found", http.StatusNotFound)
		case errors.Is(err, matchModel.ErrInvalidTransition):
			errorResponse(c, "INVALID_MATCH_STATE", "illegal status transition", http.StatusConflict)
		default:
			h.logger.Errorw("error changing match status", "match_id", id, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RecordEvent handles POST /matches/:id/events request.
func (h *Handler) RecordEvent(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}

	var req matchModel.RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.RecordEvent(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, matchModel.ErrMatchNotFound):
			errorResponse(c, "NOT_FOUND", "match not found", http.StatusNotFound)
		case errors.Is(err, matchModel.ErrMatchNotLive):
			errorResponse(c, "INVALID_MATCH_STATE", "events can only be recorded while the match is live", http.StatusConflict)
		case errors.Is(err, matchModel.ErrInvalidEventType):
			errorResponse(c, "INVALID_REQUEST", "unknown event type", http.StatusBadRequest)
		case errors.Is(err, matchModel.ErrEventTeamNotPlaying):
			errorResponse(c, "INVALID_REQUEST", "event team is not playing in this match", http.StatusBadRequest)
		default:
			h.logger.Errorw("error recording event", "match_id", id, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Finish handles POST /matches/:id/finish request.
func (h *Handler) Finish(c *gin.Context) {
	id, ok := matchID(c)
	if !ok {
		return
	}

	var req matchModel.FinishMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Finish(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, matchModel.ErrMatchNotFound):
			errorResponse(c, "NOT_FOUND", "match not found", http.StatusNotFound)
		case errors.Is(err, matchModel.ErrMatchNotLive):
			errorResponse(c, "INVALID_MATCH_STATE", "only a live match can be finished", http.StatusConflict)
		case errors.Is(err, matchModel.ErrInvalidScore):
			errorResponse(c, "INVALID_REQUEST", "scores must be non-negative", http.StatusBadRequest)
		default:
			h.logger.Errorw("error finishing match", "match_id", id, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

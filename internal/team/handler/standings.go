package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fivekicks/football/internal/standings"
	teamModel "github.com/fivekicks/football/internal/team/model"
)

// StandingsHandler handles HTTP requests for team standings repair.
type StandingsHandler struct {
	standings standings.Service
	logger    *zap.SugaredLogger
}

// NewStandings creates a new standings handler instance.
func NewStandings(svc standings.Service, logger *zap.SugaredLogger) *StandingsHandler {
	return &StandingsHandler{standings: svc, logger: logger}
}

// Rebuild handles POST /teams/:id/standings/rebuild request. It
// recomputes the team's stats from its finished match history,
// repairing any drift in the stored aggregates.
func (h *StandingsHandler) Rebuild(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid team id", http.StatusBadRequest)
		return
	}

	stats, rebuildErr := h.standings.Rebuild(c.Request.Context(), uint(id))
	if rebuildErr != nil {
		if errors.Is(rebuildErr, teamModel.ErrTeamNotFound) {
			errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error rebuilding standings", "team_id", id, "error", rebuildErr)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

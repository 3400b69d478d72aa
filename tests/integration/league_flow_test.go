//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appConfig "github.com/fivekicks/football/internal/config"
	matchModel "github.com/fivekicks/football/internal/match/model"
	matchRouter "github.com/fivekicks/football/internal/match/router"
	"github.com/fivekicks/football/internal/middleware"
	"github.com/fivekicks/football/internal/standings"
	teamModel "github.com/fivekicks/football/internal/team/model"
	teamRouter "github.com/fivekicks/football/internal/team/router"
	tournamentModel "github.com/fivekicks/football/internal/tournament/model"
	tournamentRouter "github.com/fivekicks/football/internal/tournament/router"
	userModel "github.com/fivekicks/football/internal/user/model"
	userRouter "github.com/fivekicks/football/internal/user/router"
)

func setupApp(t *testing.T) *gin.Engine {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&userModel.User{},
		&teamModel.Team{},
		&tournamentModel.Tournament{},
		&tournamentModel.TournamentTeam{},
		&matchModel.Match{},
		&matchModel.MatchEvent{},
	)
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()
	league := appConfig.LeagueConfig{
		DefaultMaxTeams:        16,
		DefaultRegistrationFee: 500,
		DefaultPrizePool:       10000,
		PointsPerWin:           3,
		PointsPerDraw:          1,
	}
	standingsSvc := standings.New(db, standings.Points{Win: league.PointsPerWin, Draw: league.PointsPerDraw}, logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	userRouter.RegisterRoutes(router, db, logger)
	teamRouter.RegisterRoutes(router, db, standingsSvc, logger)
	tournamentRouter.RegisterRoutes(router, db, league, logger)
	matchRouter.RegisterRoutes(router, db, standingsSvc, logger)

	return router
}

type identity struct {
	userID uint
	email  string
	role   string
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, id *identity) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if id != nil {
		req.Header.Set(middleware.HeaderUserID, fmt.Sprintf("%d", id.userID))
		req.Header.Set(middleware.HeaderEmail, id.email)
		if id.role != "" {
			req.Header.Set(middleware.HeaderRole, id.role)
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func registerUser(t *testing.T, router *gin.Engine, email, name string) identity {
	w := doJSON(t, router, http.MethodPost, "/users/register", gin.H{
		"email":     email,
		"full_name": name,
		"password":  "secret",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp userModel.UserResponse
	decode(t, w, &resp)
	return identity{userID: resp.ID, email: resp.Email}
}

func TestLeagueFlow(t *testing.T) {
	router := setupApp(t)
	admin := identity{userID: 1000, email: "admin@fivekicks.com", role: "ADMIN"}

	// Two users register and found their teams.
	ahmed := registerUser(t, router, "ahmed@fivekicks.com", "Ahmed Hassan")
	sara := registerUser(t, router, "sara@fivekicks.com", "Sara Mahmoud")

	var lions, tigers teamModel.TeamResponse

	w := doJSON(t, router, http.MethodPost, "/teams", gin.H{"name": "Cairo Lions"}, &ahmed)
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &lions)

	w = doJSON(t, router, http.MethodPost, "/teams", gin.H{"name": "Giza Tigers"}, &sara)
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &tigers)

	t.Run("creating a team promotes the captain", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/users/me", nil, &ahmed)
		require.Equal(t, http.StatusOK, w.Code)

		var me userModel.UserResponse
		decode(t, w, &me)
		assert.Equal(t, "TEAM_CAPTAIN", me.Role)
	})

	// The admin opens a tournament for registration.
	var cup tournamentModel.TournamentResponse
	w = doJSON(t, router, http.MethodPost, "/tournaments", gin.H{
		"name":       "Cairo Summer Cup",
		"start_date": "2026-06-01T00:00:00Z",
		"end_date":   "2026-06-30T00:00:00Z",
		"location":   "Cairo",
	}, &admin)
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &cup)
	assert.Equal(t, "UPCOMING", cup.Status)
	assert.Equal(t, 16, cup.MaxTeams)
	assert.Equal(t, 500, cup.RegistrationFee)

	t.Run("joining before registration opens is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost,
			fmt.Sprintf("/tournaments/%d/join", cup.ID),
			gin.H{"team_id": lions.ID}, &ahmed)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "REGISTRATION_CLOSED")
	})

	t.Run("non-admin cannot advance a tournament", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost,
			fmt.Sprintf("/tournaments/%d/advance", cup.ID),
			gin.H{"status": "REGISTRATION_OPEN"}, &ahmed)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	w = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/tournaments/%d/advance", cup.ID),
		gin.H{"status": "REGISTRATION_OPEN"}, &admin)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("both teams join once", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost,
			fmt.Sprintf("/tournaments/%d/join", cup.ID),
			gin.H{"team_id": lions.ID}, &ahmed)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodPost,
			fmt.Sprintf("/tournaments/%d/join", cup.ID),
			gin.H{"team_id": tigers.ID}, &sara)
		require.Equal(t, http.StatusOK, w.Code)

		var joined tournamentModel.TournamentResponse
		decode(t, w, &joined)
		assert.Equal(t, 2, joined.TeamsRegistered)

		w = doJSON(t, router, http.MethodPost,
			fmt.Sprintf("/tournaments/%d/join", cup.ID),
			gin.H{"team_id": lions.ID}, &ahmed)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "ALREADY_JOINED")
	})

	// The admin schedules the derby.
	var match matchModel.MatchResponse
	w = doJSON(t, router, http.MethodPost, "/matches", gin.H{
		"home_team_id":  lions.ID,
		"away_team_id":  tigers.ID,
		"stadium":       "Cairo Stadium",
		"start_time":    "2026-06-10T18:00:00Z",
		"tournament_id": cup.ID,
	}, &admin)
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &match)
	assert.Equal(t, "SCHEDULED", match.Status)
	assert.Equal(t, fmt.Sprintf("MATCH-%d", match.ID), match.ChatKey)

	t.Run("events are rejected before kickoff", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost,
			fmt.Sprintf("/matches/%d/events", match.ID),
			gin.H{"type": "GOAL", "team_id": lions.ID, "minute": 1}, &admin)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/matches/%d/start", match.ID), nil, &admin)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("events during the match", func(t *testing.T) {
		for _, e := range []gin.H{
			{"type": "GOAL", "team_id": lions.ID, "minute": 12},
			{"type": "GOAL", "team_id": tigers.ID, "minute": 55},
			{"type": "GOAL", "team_id": lions.ID, "minute": 78},
			{"type": "YELLOW_CARD", "team_id": tigers.ID, "minute": 80},
		} {
			w := doJSON(t, router, http.MethodPost,
				fmt.Sprintf("/matches/%d/events", match.ID), e, &admin)
			require.Equal(t, http.StatusCreated, w.Code)
		}
	})

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/matches/%d/finish", match.ID),
		gin.H{"home_score": 2, "away_score": 1}, &admin)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("finishing twice is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/matches/%d/finish", match.ID),
			gin.H{"home_score": 9, "away_score": 0}, &admin)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("match view shows score and ordered events", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/matches/%d", match.ID), nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var finished matchModel.MatchResponse
		decode(t, w, &finished)
		assert.Equal(t, "FINISHED", finished.Status)
		assert.Equal(t, 2, finished.HomeScore)
		assert.Equal(t, 1, finished.AwayScore)
		require.Len(t, finished.Events, 4)
		assert.Equal(t, 12, finished.Events[0].Minute)
		assert.Equal(t, 80, finished.Events[3].Minute)
	})

	t.Run("standings reflect the result", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/teams/my", nil, &ahmed)
		require.Equal(t, http.StatusOK, w.Code)

		var list struct {
			Teams []teamModel.TeamResponse `json:"teams"`
		}
		decode(t, w, &list)
		require.Len(t, list.Teams, 1)
		assert.Equal(t, 1, list.Teams[0].Wins)
		assert.Equal(t, 3, list.Teams[0].Points)
		assert.Equal(t, 2, list.Teams[0].GoalsScored)
		assert.Equal(t, 1, list.Teams[0].GoalsConceded)

		w = doJSON(t, router, http.MethodGet, "/teams/my", nil, &sara)
		require.Equal(t, http.StatusOK, w.Code)
		decode(t, w, &list)
		require.Len(t, list.Teams, 1)
		assert.Equal(t, 1, list.Teams[0].Losses)
		assert.Equal(t, 0, list.Teams[0].Points)
	})

	t.Run("rebuild agrees with incremental standings", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost,
			fmt.Sprintf("/teams/%d/standings/rebuild", lions.ID), nil, &admin)
		require.Equal(t, http.StatusOK, w.Code)

		var rebuilt struct {
			Stats teamModel.Stats `json:"stats"`
		}
		decode(t, w, &rebuilt)
		assert.Equal(t, 1, rebuilt.Stats.Wins)
		assert.Equal(t, 3, rebuilt.Stats.Points)
	})
}

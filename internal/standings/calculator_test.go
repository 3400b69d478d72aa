package standings

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	matchModel "github.com/fivekicks/football/internal/match/model"
	teamModel "github.com/fivekicks/football/internal/team/model"
)

func finished(home, away uint, homeScore, awayScore int) matchModel.Match {
	return matchModel.Match{
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		Status:     matchModel.StatusFinished,
	}
}

func TestFold(t *testing.T) {
	pts := DefaultPoints()

	t.Run("home win with clean sheet", func(t *testing.T) {
		stats := Fold(teamModel.Stats{}, 1, finished(1, 2, 2, 0), pts)

		assert.Equal(t, 1, stats.Wins)
		assert.Equal(t, 3, stats.Points)
		assert.Equal(t, 2, stats.GoalsScored)
		assert.Equal(t, 0, stats.GoalsConceded)
		assert.Equal(t, 1, stats.CleanSheets)
	})

	t.Run("away side sees swapped scores", func(t *testing.T) {
		stats := Fold(teamModel.Stats{}, 2, finished(1, 2, 2, 1), pts)

		assert.Equal(t, 1, stats.Losses)
		assert.Equal(t, 0, stats.Points)
		assert.Equal(t, 1, stats.GoalsScored)
		assert.Equal(t, 2, stats.GoalsConceded)
		assert.Equal(t, 0, stats.CleanSheets)
	})

	t.Run("draw awards draw points to both sides", func(t *testing.T) {
		m := finished(1, 2, 1, 1)

		home := Fold(teamModel.Stats{}, 1, m, pts)
		away := Fold(teamModel.Stats{}, 2, m, pts)

		assert.Equal(t, 1, home.Draws)
		assert.Equal(t, 1, home.Points)
		assert.Equal(t, home, away)
	})

	t.Run("goalless draw is a clean sheet for both", func(t *testing.T) {
		stats := Fold(teamModel.Stats{}, 1, finished(1, 2, 0, 0), pts)

		assert.Equal(t, 1, stats.Draws)
		assert.Equal(t, 1, stats.CleanSheets)
	})

	t.Run("non finished match leaves stats unchanged", func(t *testing.T) {
		m := finished(1, 2, 2, 0)
		m.Status = matchModel.StatusLive

		before := teamModel.Stats{Wins: 3, Points: 9}
		assert.Equal(t, before, Fold(before, 1, m, pts))
	})

	t.Run("cancelled match leaves stats unchanged", func(t *testing.T) {
		m := finished(1, 2, 2, 0)
		m.Status = matchModel.StatusCancelled

		assert.Equal(t, teamModel.Stats{}, Fold(teamModel.Stats{}, 1, m, pts))
	})

	t.Run("match the team did not play leaves stats unchanged", func(t *testing.T) {
		assert.Equal(t, teamModel.Stats{}, Fold(teamModel.Stats{}, 9, finished(1, 2, 2, 0), pts))
	})

	t.Run("custom points table", func(t *testing.T) {
		stats := Fold(teamModel.Stats{}, 1, finished(1, 2, 1, 0), Points{Win: 2, Draw: 1})
		assert.Equal(t, 2, stats.Points)
	})
}

func TestCompute(t *testing.T) {
	pts := DefaultPoints()

	t.Run("season of mixed results", func(t *testing.T) {
		matches := []matchModel.Match{
			finished(1, 2, 2, 1), // win
			finished(3, 1, 0, 0), // draw, clean sheet
			finished(1, 4, 1, 3), // loss
			finished(2, 3, 5, 0), // not ours
		}

		stats := Compute(1, matches, pts)

		assert.Equal(t, 1, stats.Wins)
		assert.Equal(t, 1, stats.Draws)
		assert.Equal(t, 1, stats.Losses)
		assert.Equal(t, 4, stats.Points)
		assert.Equal(t, 3, stats.GoalsScored)
		assert.Equal(t, 4, stats.GoalsConceded)
		assert.Equal(t, 1, stats.CleanSheets)
	})

	t.Run("no matches yields zero stats", func(t *testing.T) {
		assert.Equal(t, teamModel.Stats{}, Compute(1, nil, pts))
	})
}

// Folding matches one at a time must agree with computing from the
// full history, regardless of the match set.
func TestFoldComputeAgree(t *testing.T) {
	pts := DefaultPoints()
	rng := rand.New(rand.NewSource(42))

	statuses := []matchModel.Status{
		matchModel.StatusFinished,
		matchModel.StatusFinished,
		matchModel.StatusScheduled,
		matchModel.StatusCancelled,
	}

	for round := 0; round < 20; round++ {
		matches := make([]matchModel.Match, 0, 30)
		for i := 0; i < 30; i++ {
			home := uint(rng.Intn(4) + 1)
			away := uint(rng.Intn(4) + 1)
			if home == away {
				away = home%4 + 1
			}
			m := finished(home, away, rng.Intn(5), rng.Intn(5))
			m.Status = statuses[rng.Intn(len(statuses))]
			matches = append(matches, m)
		}

		for teamID := uint(1); teamID <= 4; teamID++ {
			var incremental teamModel.Stats
			for _, m := range matches {
				incremental = Fold(incremental, teamID, m, pts)
			}

			assert.Equal(t, Compute(teamID, matches, pts), incremental)
		}
	}
}

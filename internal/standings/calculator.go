// Package standings derives team aggregate stats from finished
// matches. The derivation is a pure function of the finished match set:
// it can be applied incrementally as matches finish or replayed from
// scratch, and both paths yield the same result.
package standings

import (
	matchModel "github.com/fivekicks/football/internal/match/model"
	teamModel "github.com/fivekicks/football/internal/team/model"
)

// Points holds the standings points awarded per result.
type Points struct {
	Win  int
	Draw int
}

// DefaultPoints returns the standard football scoring.
func DefaultPoints() Points {
	return Points{Win: 3, Draw: 1}
}

// Fold incorporates one FINISHED match into a team's stats. Matches
// in any other status, or matches the team did not play, leave the
// stats unchanged.
func Fold(stats teamModel.Stats, teamID uint, m matchModel.Match, pts Points) teamModel.Stats {
	if m.Status != matchModel.StatusFinished || !m.Involves(teamID) {
		return stats
	}

	scored, conceded := m.HomeScore, m.AwayScore
	if m.AwayTeamID == teamID {
		scored, conceded = conceded, scored
	}

	stats.GoalsScored += scored
	stats.GoalsConceded += conceded
	if conceded == 0 {
		stats.CleanSheets++
	}

	switch {
	case scored > conceded:
		stats.Wins++
		stats.Points += pts.Win
	case scored == conceded:
		stats.Draws++
		stats.Points += pts.Draw
	default:
		stats.Losses++
	}

	return stats
}

// Compute derives a team's stats from its full match history.
func Compute(teamID uint, matches []matchModel.Match, pts Points) teamModel.Stats {
	var stats teamModel.Stats
	for _, m := range matches {
		stats = Fold(stats, teamID, m, pts)
	}
	return stats
}

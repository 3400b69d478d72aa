package standings

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	matchModel "github.com/fivekicks/football/internal/match/model"
	matchRepository "github.com/fivekicks/football/internal/match/repository"
	teamModel "github.com/fivekicks/football/internal/team/model"
	teamRepository "github.com/fivekicks/football/internal/team/repository"
)

// Service applies finished matches to stored team stats and rebuilds
// them from match history.
type Service interface {
	// ApplyFinished folds one FINISHED match into the stored stats of
	// both teams. Must run inside the transaction that finished the
	// match so standings move exactly once per match.
	ApplyFinished(ctx context.Context, tx *gorm.DB, match *matchModel.Match) error

	// Rebuild recomputes a team's stats from its FINISHED match
	// history and overwrites the stored values.
	Rebuild(ctx context.Context, teamID uint) (*teamModel.Stats, error)
}

type service struct {
	db     *gorm.DB
	points Points
	logger *zap.SugaredLogger
}

// New creates a new standings service instance.
func New(db *gorm.DB, points Points, logger *zap.SugaredLogger) Service {
	return &service{db: db, points: points, logger: logger}
}

// ApplyFinished folds one FINISHED match into both teams' stored stats.
// Team rows are locked so a concurrent rebuild or finish involving the
// same team serializes behind this write.
func (s *service) ApplyFinished(ctx context.Context, tx *gorm.DB, match *matchModel.Match) error {
	txTeamRepo := teamRepository.New(tx)

	for _, teamID := range []uint{match.HomeTeamID, match.AwayTeamID} {
		team, err := txTeamRepo.GetByIDForUpdate(ctx, teamID)
		if err != nil {
			return err
		}

		updated := Fold(team.Stats, teamID, *match, s.points)
		if err := txTeamRepo.UpdateStats(ctx, teamID, updated); err != nil {
			return err
		}
	}

	return nil
}

// Rebuild recomputes a team's stats from its FINISHED match history.
// Runs in its own transaction with the team row locked, so it cannot
// interleave with a finish being applied to the same team.
func (s *service) Rebuild(ctx context.Context, teamID uint) (*teamModel.Stats, error) {
	var stats teamModel.Stats
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txTeamRepo := teamRepository.New(tx)
		txMatchRepo := matchRepository.New(tx)

		if _, err := txTeamRepo.GetByIDForUpdate(ctx, teamID); err != nil {
			return err
		}

		matches, err := txMatchRepo.ListFinishedByTeam(ctx, teamID)
		if err != nil {
			return err
		}

		stats = Compute(teamID, matches, s.points)
		return txTeamRepo.UpdateStats(ctx, teamID, stats)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("standings rebuilt", "team_id", teamID, "points", stats.Points)
	return &stats, nil
}

// Package seed populates demo tournaments on startup when enabled.
package seed

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/fivekicks/football/internal/config"
	tournamentModel "github.com/fivekicks/football/internal/tournament/model"
	tournamentRepository "github.com/fivekicks/football/internal/tournament/repository"
)

// Tournaments seeds demo tournaments if none exist yet. A non-empty
// tournaments table means a previous run already seeded (or real data
// exists), so the call is a no-op.
func Tournaments(ctx context.Context, db *gorm.DB, league appConfig.LeagueConfig, logger *zap.SugaredLogger) error {
	repo := tournamentRepository.New(db)

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demos := []struct {
		name   string
		status tournamentModel.Status
	}{
		{"Cairo Summer Cup", tournamentModel.StatusRegistrationOpen},
		{"Ramadan League", tournamentModel.StatusUpcoming},
		{"University Championship", tournamentModel.StatusLive},
	}

	now := time.Now()
	for _, demo := range demos {
		tournament := &tournamentModel.Tournament{
			Name:            demo.name,
			Status:          demo.status,
			StartDate:       now.AddDate(0, 0, 7),
			EndDate:         now.AddDate(0, 0, 10),
			Location:        "Cairo Stadium",
			MaxTeams:        league.DefaultMaxTeams,
			RegistrationFee: league.DefaultRegistrationFee,
			PrizePool:       league.DefaultPrizePool,
			About:           "A thrilling tournament.",
		}
		if err := repo.Create(ctx, tournament); err != nil {
			return err
		}
	}

	logger.Infow("demo tournaments seeded", "count", len(demos))
	return nil
}

package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appConfig "github.com/fivekicks/football/internal/config"
	tournamentModel "github.com/fivekicks/football/internal/tournament/model"
	tournamentRepository "github.com/fivekicks/football/internal/tournament/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&tournamentModel.Tournament{}, &tournamentModel.TournamentTeam{})
	require.NoError(t, err)

	return db
}

func TestTournaments(t *testing.T) {
	ctx := context.Background()
	league := appConfig.LeagueConfig{
		DefaultMaxTeams:        16,
		DefaultRegistrationFee: 500,
		DefaultPrizePool:       10000,
	}
	logger := zap.NewNop().Sugar()

	t.Run("seeds demo tournaments into an empty table", func(t *testing.T) {
		db := setupTestDB(t)

		require.NoError(t, Tournaments(ctx, db, league, logger))

		tournaments, err := tournamentRepository.New(db).List(ctx)
		require.NoError(t, err)
		require.Len(t, tournaments, 3)

		byName := make(map[string]tournamentModel.Tournament, len(tournaments))
		for _, tr := range tournaments {
			byName[tr.Name] = tr
		}
		assert.Equal(t, tournamentModel.StatusRegistrationOpen, byName["Cairo Summer Cup"].Status)
		assert.Equal(t, tournamentModel.StatusUpcoming, byName["Ramadan League"].Status)
		assert.Equal(t, tournamentModel.StatusLive, byName["University Championship"].Status)

		for _, tr := range tournaments {
			assert.Equal(t, 16, tr.MaxTeams)
			assert.Equal(t, 500, tr.RegistrationFee)
			assert.Equal(t, 10000, tr.PrizePool)
		}
	})

	t.Run("existing data makes seeding a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		repo := tournamentRepository.New(db)

		existing := &tournamentModel.Tournament{
			Name:     "Cairo Summer Cup",
			Status:   tournamentModel.StatusLive,
			Location: "Cairo",
			MaxTeams: 8,
		}
		require.NoError(t, repo.Create(ctx, existing))

		require.NoError(t, Tournaments(ctx, db, league, logger))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("seeding twice does not duplicate", func(t *testing.T) {
		db := setupTestDB(t)

		require.NoError(t, Tournaments(ctx, db, league, logger))
		require.NoError(t, Tournaments(ctx, db, league, logger))

		count, err := tournamentRepository.New(db).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

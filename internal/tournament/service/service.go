// Package service provides business logic layer for tournament module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fivekicks/football/internal/config"
	teamRepository "github.com/fivekicks/football/internal/team/repository"
	tournamentModel "github.com/fivekicks/football/internal/tournament/model"
	"github.com/fivekicks/football/internal/tournament/repository"
)

// Service defines the interface for tournament business logic operations.
type Service interface {
	// List returns all tournaments with their registered team counts.
	List(ctx context.Context) ([]tournamentModel.TournamentResponse, error)

	// Create creates a new tournament in UPCOMING status, applying
	// league defaults for capacity and money fields left unset.
	Create(ctx context.Context, req *tournamentModel.CreateTournamentRequest) (*tournamentModel.TournamentResponse, error)

	// Join adds a team to a tournament during its registration window.
	Join(ctx context.Context, tournamentID, teamID uint) (*tournamentModel.TournamentResponse, error)

	// Advance moves a tournament forward through its lifecycle.
	Advance(ctx context.Context, id uint, next tournamentModel.Status) (*tournamentModel.TournamentResponse, error)
}

type service struct {
	repo     repository.Repository
	teamRepo teamRepository.Repository
	db       *gorm.DB
	league   config.LeagueConfig
	logger   *zap.SugaredLogger
}

// New creates a new tournament service instance.
func New(
	repo repository.Repository,
	teamRepo teamRepository.Repository,
	db *gorm.DB,
	league config.LeagueConfig,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		teamRepo: teamRepo,
		db:       db,
		league:   league,
		logger:   logger,
	}
}

// List returns all tournaments with their registered team counts.
func (s *service) List(ctx context.Context) ([]tournamentModel.TournamentResponse, error) {
	tournaments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.TeamCounts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]tournamentModel.TournamentResponse, 0, len(tournaments))
	for i := range tournaments {
		responses = append(responses, *tournamentModel.NewTournamentResponse(&tournaments[i], counts[tournaments[i].ID]))
	}
	return responses, nil
}

// Create creates a new tournament in UPCOMING status.
func (s *service) Create(ctx context.Context, req *tournamentModel.CreateTournamentRequest) (*tournamentModel.TournamentResponse, error) {
	if req.Name == "" {
		return nil, tournamentModel.ErrInvalidName
	}
	if req.StartDate.After(req.EndDate) {
		return nil, tournamentModel.ErrInvalidDates
	}

	maxTeams := req.MaxTeams
	if maxTeams == 0 {
		maxTeams = s.league.DefaultMaxTeams
	}
	if maxTeams <= 0 {
		return nil, tournamentModel.ErrInvalidCapacity
	}

	registrationFee := s.league.DefaultRegistrationFee
	if req.RegistrationFee != nil {
		registrationFee = *req.RegistrationFee
	}
	prizePool := s.league.DefaultPrizePool
	if req.PrizePool != nil {
		prizePool = *req.PrizePool
	}

	tournament := &tournamentModel.Tournament{
		Name:            req.Name,
		Status:          tournamentModel.StatusUpcoming,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Location:        req.Location,
		MaxTeams:        maxTeams,
		RegistrationFee: registrationFee,
		PrizePool:       prizePool,
		About:           req.About,
	}
	if err := s.repo.Create(ctx, tournament); err != nil {
		return nil, err
	}

	s.logger.Infow("tournament created", "tournament_id", tournament.ID, "name", tournament.Name)
	return tournamentModel.NewTournamentResponse(tournament, 0), nil
}

// Join adds a team to a tournament. The tournament row is locked for
// the whole transaction, so two concurrent joins cannot both observe a
// free slot and overshoot capacity.
func (s *service) Join(ctx context.Context, tournamentID, teamID uint) (*tournamentModel.TournamentResponse, error) {
	var result *tournamentModel.TournamentResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		txTeamRepo := teamRepository.New(tx)

		tournament, err := txRepo.GetByIDForUpdate(ctx, tournamentID)
		if err != nil {
			return err
		}

		if _, err := txTeamRepo.GetByID(ctx, teamID); err != nil {
			return err
		}

		if tournament.Status != tournamentModel.StatusRegistrationOpen {
			return tournamentModel.ErrRegistrationClosed
		}

		joined, err := txRepo.HasTeam(ctx, tournamentID, teamID)
		if err != nil {
			return err
		}
		if joined {
			return tournamentModel.ErrAlreadyJoined
		}

		count, err := txRepo.CountTeams(ctx, tournamentID)
		if err != nil {
			return err
		}
		if count >= tournament.MaxTeams {
			return tournamentModel.ErrTournamentFull
		}

		if err := txRepo.AddTeam(ctx, tournamentID, teamID); err != nil {
			return err
		}

		result = tournamentModel.NewTournamentResponse(tournament, count+1)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team joined tournament", "tournament_id", tournamentID, "team_id", teamID)
	return result, nil
}

// Advance moves a tournament forward through its lifecycle. Backward
// transitions are rejected.
func (s *service) Advance(ctx context.Context, id uint, next tournamentModel.Status) (*tournamentModel.TournamentResponse, error) {
	if !next.Valid() {
		return nil, tournamentModel.ErrInvalidTransition
	}

	var result *tournamentModel.TournamentResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		tournament, err := txRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !tournament.Status.CanTransitionTo(next) {
			return tournamentModel.ErrInvalidTransition
		}
		if err := txRepo.UpdateStatus(ctx, id, next); err != nil {
			return err
		}

		count, err := txRepo.CountTeams(ctx, id)
		if err != nil {
			return err
		}

		tournament.Status = next
		result = tournamentModel.NewTournamentResponse(tournament, count)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("tournament status changed", "tournament_id", id, "status", next)
	return result, nil
}

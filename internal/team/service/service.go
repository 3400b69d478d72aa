// Package service provides business logic layer for team module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/fivekicks/football/internal/team/model"
	"github.com/fivekicks/football/internal/team/repository"
	userModel "github.com/fivekicks/football/internal/user/model"
	userRepository "github.com/fivekicks/football/internal/user/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates a new team captained by the given user and
	// promotes the captain's role if needed.
	CreateTeam(ctx context.Context, name string, captainEmail string) (*teamModel.TeamResponse, error)

	// MyTeams returns all teams captained by the given user.
	MyTeams(ctx context.Context, captainEmail string) ([]teamModel.TeamResponse, error)
}

type service struct {
	repo     repository.Repository
	userRepo userRepository.Repository
	db       *gorm.DB
	logger   *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, userRepo userRepository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		db:       db,
		logger:   logger,
	}
}

// CreateTeam creates a new team in a transaction. The owning user is
// promoted from USER to TEAM_CAPTAIN; promotion is idempotent and
// never demotes an ADMIN.
func (s *service) CreateTeam(ctx context.Context, name string, captainEmail string) (*teamModel.TeamResponse, error) {
	if name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	var result *teamModel.TeamResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)
		txUserRepo := userRepository.New(tx)

		captain, err := txUserRepo.GetByEmail(ctx, captainEmail)
		if err != nil {
			return err
		}

		team := &teamModel.Team{
			Name:      name,
			CaptainID: captain.ID,
		}
		if err := txRepo.Create(ctx, team); err != nil {
			return err
		}

		promoted := captain.Role.Promote(userModel.RoleTeamCaptain)
		if promoted != captain.Role {
			if err := txUserRepo.UpdateRole(ctx, captain.ID, promoted); err != nil {
				return err
			}
		}

		result = teamModel.NewTeamResponse(team)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", result.ID, "name", result.Name)
	return result, nil
}

// MyTeams returns all teams captained by the given user. A valid user
// with no teams gets an empty list, not an error.
func (s *service) MyTeams(ctx context.Context, captainEmail string) ([]teamModel.TeamResponse, error) {
	captain, err := s.userRepo.GetByEmail(ctx, captainEmail)
	if err != nil {
		return nil, err
	}

	teams, err := s.repo.ListByCaptain(ctx, captain.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *teamModel.NewTeamResponse(&teams[i]))
	}
	return responses, nil
}

// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	teamModel "github.com/fivekicks/football/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create persists a new team with zeroed stats.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id uint) (*teamModel.Team, error)

	// GetByIDForUpdate finds a team by id and locks its row for the
	// duration of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*teamModel.Team, error)

	// GetByName finds a team by name.
	GetByName(ctx context.Context, name string) (*teamModel.Team, error)

	// ListByCaptain returns all teams captained by the given user.
	ListByCaptain(ctx context.Context, captainID uint) ([]teamModel.Team, error)

	// UpdateStats overwrites the aggregate stats of a team.
	UpdateStats(ctx context.Context, id uint, stats teamModel.Stats) error
}

type repository struct {
	db *gorm.DB
}

// lockForUpdate adds a row-level lock on dialects that support it.
// SQLite serializes writers on its own and rejects FOR UPDATE.
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new team with zeroed stats.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	team.Stats = teamModel.Stats{}
	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return teamModel.ErrTeamNameTaken
		}
		return err
	}
	return nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// GetByIDForUpdate finds a team by id with a row-level lock.
func (r *repository) GetByIDForUpdate(ctx context.Context, id uint) (*teamModel.Team, error) {
	var team teamModel.Team
	err := lockForUpdate(r.db.WithContext(ctx)).
		First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// GetByName finds a team by name.
func (r *repository) GetByName(ctx context.Context, name string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// ListByCaptain returns all teams captained by the given user.
func (r *repository) ListByCaptain(ctx context.Context, captainID uint) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Where("captain_id = ?", captainID).
		Order("id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}

// UpdateStats overwrites the aggregate stats of a team.
func (r *repository) UpdateStats(ctx context.Context, id uint, stats teamModel.Stats) error {
	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"wins":           stats.Wins,
			"draws":          stats.Draws,
			"losses":         stats.Losses,
			"points":         stats.Points,
			"goals_scored":   stats.GoalsScored,
			"goals_conceded": stats.GoalsConceded,
			"clean_sheets":   stats.CleanSheets,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}

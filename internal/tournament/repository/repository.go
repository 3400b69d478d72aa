// Package repository provides data access layer for tournament module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	tournamentModel "github.com/fivekicks/football/internal/tournament/model"
)

// Repository defines the interface for tournament data access operations.
type Repository interface {
	// Create persists a new tournament.
	Create(ctx context.Context, tournament *tournamentModel.Tournament) error

	// List returns all tournaments in creation order.
	List(ctx context.Context) ([]tournamentModel.Tournament, error)

	// GetByID finds a tournament by id.
	GetByID(ctx context.Context, id uint) (*tournamentModel.Tournament, error)

	// GetByIDForUpdate finds a tournament by id and locks its row for
	// the duration of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*tournamentModel.Tournament, error)

	// CountTeams returns the number of teams joined to a tournament.
	CountTeams(ctx context.Context, tournamentID uint) (int, error)

	// TeamCounts returns the joined-team count per tournament in a
	// single query, keyed by tournament id. Tournaments without teams
	// are absent from the map.
	TeamCounts(ctx context.Context) (map[uint]int, error)

	// HasTeam reports whether a team is already joined to a tournament.
	HasTeam(ctx context.Context, tournamentID, teamID uint) (bool, error)

	// AddTeam appends a team to the tournament's membership.
	AddTeam(ctx context.Context, tournamentID, teamID uint) error

	// UpdateStatus sets the status of a tournament.
	UpdateStatus(ctx context.Context, id uint, status tournamentModel.Status) error

	// Count returns the total number of tournaments.
	Count(ctx context.Context) (int64, error)
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

// New creates a new tournament repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new tournament.
func (r *repository) Create(ctx context.Context, tournament *tournamentModel.Tournament) error {
	return r.db.WithContext(ctx).Create(tournament).Error
}

// List returns all tournaments in creation order.
func (r *repository) List(ctx context.Context) ([]tournamentModel.Tournament, error) {
	var tournaments []tournamentModel.Tournament
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&tournaments).Error
	if err != nil {
		return nil, err
	}
	if tournaments == nil {
		tournaments = []tournamentModel.Tournament{}
	}
	return tournaments, nil
}

// GetByID finds a tournament by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*tournamentModel.Tournament, error) {
	var tournament tournamentModel.Tournament
	err := r.db.WithContext(ctx).First(&tournament, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tournamentModel.ErrTournamentNotFound
		}
		return nil, err
	}
	return &tournament, nil
}

// GetByIDForUpdate finds a tournament by id with a row-level lock.
// Serializes concurrent joins so capacity checks cannot race.
func (r *repository) GetByIDForUpdate(ctx context.Context, id uint) (*tournamentModel.Tournament, error) {
	var tournament tournamentModel.Tournament
	err := lockForUpdate(r.db.WithContext(ctx)).
		First(&tournament, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tournamentModel.ErrTournamentNotFound
		}
		return nil, err
	}
	return &tournament, nil
}

// CountTeams returns the number of teams joined to a tournament.
func (r *repository) CountTeams(ctx context.Context, tournamentID uint) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&tournamentModel.TournamentTeam{}).
		Where("tournament_id = ?", tournamentID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// TeamCounts returns the joined-team count per tournament.
func (r *repository) TeamCounts(ctx context.Context) (map[uint]int, error) {
	var rows []struct {
		TournamentID uint
		Count        int
	}
	err := r.db.WithContext(ctx).
		Model(&tournamentModel.TournamentTeam{}).
		Select("tournament_id, COUNT(*) AS count").
		Group("tournament_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int, len(rows))
	for _, row := range rows {
		counts[row.TournamentID] = row.Count
	}
	return counts, nil
}

// HasTeam reports whether a team is already joined to a tournament.
func (r *repository) HasTeam(ctx context.Context, tournamentID, teamID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&tournamentModel.TournamentTeam{}).
		Where("tournament_id = ? AND team_id = ?", tournamentID, teamID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddTeam appends a team to the tournament's membership.
func (r *repository) AddTeam(ctx context.Context, tournamentID, teamID uint) error {
	membership := &tournamentModel.TournamentTeam{
		TournamentID: tournamentID,
		TeamID:       teamID,
	}
	err := r.db.WithContext(ctx).Create(membership).Error
	if err != nil {
		if isDuplicateError(err) {
			return tournamentModel.ErrAlreadyJoined
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

// UpdateStatus sets the status of a tournament.
func (r *repository) UpdateStatus(ctx context.Context, id uint, status tournamentModel.Status) error {
	result := r.db.WithContext(ctx).
		Model(&tournamentModel.Tournament{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return tournamentModel.ErrTournamentNotFound
	}
	return nil
}

// Count returns the total number of tournaments.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&tournamentModel.Tournament{}).
		Count(&count).Error
	return count, err
}

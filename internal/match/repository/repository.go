// Package repository provides data access layer for match module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	matchModel "github.com/fivekicks/football/internal/match/model"
)

// Repository defines the interface for match data access operations.
type Repository interface {
	// Create persists a new match.
	Create(ctx context.Context, match *matchModel.Match) error

	// GetByID finds a match by id.
	GetByID(ctx context.Context, id uint) (*matchModel.Match, error)

	// GetByIDForUpdate finds a match by id and locks its row for the
	// duration of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*matchModel.Match, error)

	// UpdateStatus sets the status of a match.
	UpdateStatus(ctx context.Context, id uint, status matchModel.Status) error

	// Finish sets the final score and moves the match to FINISHED.
	Finish(ctx context.Context, id uint, homeScore, awayScore int) error

	// AddEvent appends an event to a match.
	AddEvent(ctx context.Context, event *matchModel.MatchEvent) error

	// ListEvents returns the events of a match ordered by minute,
	// insertion order breaking ties.
	ListEvents(ctx context.Context, matchID uint) ([]matchModel.MatchEvent, error)

	// ListFinishedByTeam returns every FINISHED match the team played.
	ListFinishedByTeam(ctx context.Context, teamID uint) ([]matchModel.Match, error)

	// DeleteWithEvents removes a match and its owned events.
	DeleteWithEvents(ctx context.Context, id uint) error
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

// New creates a new match repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new match.
func (r *repository) Create(ctx context.Context, match *matchModel.Match) error {
	return r.db.WithContext(ctx).Create(match).Error
}

// GetByID finds a match by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*matchModel.Match, error) {
	var match matchModel.Match
	err := r.db.WithContext(ctx).First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, matchModel.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// GetByIDForUpdate finds a match by id with a row-level lock.
func (r *repository) GetByIDForUpdate(ctx context.Context, id uint) (*matchModel.Match, error) {
	var match matchModel.Match
	err := lockForUpdate(r.db.WithContext(ctx)).
		First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, matchModel.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// UpdateStatus sets the status of a match.
func (r *repository) UpdateStatus(ctx context.Context, id uint, status matchModel.Status) error {
	result := r.db.WithContext(ctx).
		Model(&matchModel.Match{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return matchModel.ErrMatchNotFound
	}
	return nil
}

// Finish sets the final score and moves the match to FINISHED.
func (r *repository) Finish(ctx context.Context, id uint, homeScore, awayScore int) error {
	result := r.db.WithContext(ctx).
		Model(&matchModel.Match{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     matchModel.StatusFinished,
			"home_score": homeScore,
			"away_score": awayScore,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return matchModel.ErrMatchNotFound
	}
	return nil
}

// AddEvent appends an event to a match.
func (r *repository) AddEvent(ctx context.Context, event *matchModel.MatchEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// ListEvents returns the events of a match ordered by minute, then id.
func (r *repository) ListEvents(ctx context.Context, matchID uint) ([]matchModel.MatchEvent, error) {
	var events []matchModel.MatchEvent
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("minute ASC, id ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []matchModel.MatchEvent{}
	}
	return events, nil
}

// ListFinishedByTeam returns every FINISHED match the team played.
func (r *repository) ListFinishedByTeam(ctx context.Context, teamID uint) ([]matchModel.Match, error) {
	var matches []matchModel.Match
	err := r.db.WithContext(ctx).
		Where("status = ?", matchModel.StatusFinished).
		Where("home_team_id = ? OR away_team_id = ?", teamID, teamID).
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []matchModel.Match{}
	}
	return matches, nil
}

// DeleteWithEvents removes a match and its owned events. The match
// exclusively owns its events, so removal cascades explicitly.
func (r *repository) DeleteWithEvents(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&matchModel.MatchEvent{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&matchModel.Match{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return matchModel.ErrMatchNotFound
		}
		return nil
	})
}

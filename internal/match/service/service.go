// Package service provides business logic layer for match module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fivekicks/football/internal/chat"
	matchModel "github.com/fivekicks/football/internal/match/model"
	"github.com/fivekicks/football/internal/match/repository"
	"github.com/fivekicks/football/internal/standings"
	teamRepository "github.com/fivekicks/football/internal/team/repository"
)

// Service defines the interface for match business logic operations.
type Service interface {
	// Schedule creates a new match in SCHEDULED status with zero scores.
	Schedule(ctx context.Context, req *matchModel.ScheduleMatchRequest) (*matchModel.MatchResponse, error)

	// Get returns a match with its ordered events.
	Get(ctx context.Context, id uint) (*matchModel.MatchResponse, error)

	// Start moves a SCHEDULED match to LIVE.
	Start(ctx context.Context, id uint) (*matchModel.MatchResponse, error)

	// Cancel moves a SCHEDULED match to CANCELLED.
	Cancel(ctx context.Context, id uint) (*matchModel.MatchResponse, error)

	// RecordEvent appends an event to a LIVE match.
	RecordEvent(ctx context.Context, id uint, req *matchModel.RecordEventRequest) (*matchModel.EventResponse, error)

	// Finish sets the final score, moves a LIVE match to FINISHED and
	// applies the result to both teams' standings exactly once.
	Finish(ctx context.Context, id uint, req *matchModel.FinishMatchRequest) (*matchModel.MatchResponse, error)
}

type service struct {
	repo      repository.Repository
	teamRepo  teamRepository.Repository
	standings standings.Service
	db        *gorm.DB
	logger    *zap.SugaredLogger
}

// New creates a new match service instance.
func New(
	repo repository.Repository,
	teamRepo teamRepository.Repository,
	standingsSvc standings.Service,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:      repo,
		teamRepo:  teamRepo,
		standings: standingsSvc,
		db:        db,
		logger:    logger,
	}
}

// Schedule creates a new match in SCHEDULED status with zero scores.
func (s *service) Schedule(ctx context.Context, req *matchModel.ScheduleMatchRequest) (*matchModel.MatchResponse, error) {
	if req.HomeTeamID == req.AwayTeamID {
		return nil, matchModel.ErrSameTeam
	}

	for _, teamID := range []uint{req.HomeTeamID, req.AwayTeamID} {
		if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return nil, err
		}
	}

	match := &matchModel.Match{
		HomeTeamID:   req.HomeTeamID,
		AwayTeamID:   req.AwayTeamID,
		Stadium:      req.Stadium,
		TournamentID: req.TournamentID,
		StartTime:    req.StartTime,
		Status:       matchModel.StatusScheduled,
	}
	if err := s.repo.Create(ctx, match); err != nil {
		return nil, err
	}

	s.logger.Infow("match scheduled",
		"match_id", match.ID,
		"home_team_id", match.HomeTeamID,
		"away_team_id", match.AwayTeamID,
	)
	return s.toResponse(ctx, match)
}

// Get returns a match with its ordered events.
func (s *service) Get(ctx context.Context, id uint) (*matchModel.MatchResponse, error) {
	match, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, match)
}

// Start moves a SCHEDULED match to LIVE.
func (s *service) Start(ctx context.Context, id uint) (*matchModel.MatchResponse, error) {
	return s.transition(ctx, id, matchModel.StatusLive)
}

// Cancel moves a SCHEDULED match to CANCELLED.
func (s *service) Cancel(ctx context.Context, id uint) (*matchModel.MatchResponse, error) {
	return s.transition(ctx, id, matchModel.StatusCancelled)
}

// transition applies a status change under a row lock so concurrent
// transitions on the same match serialize.
func (s *service) transition(ctx context.Context, id uint, next matchModel.Status) (*matchModel.MatchResponse, error) {
	var match *matchModel.Match
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		m, err := txRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !m.Status.CanTransitionTo(next) {
			return matchModel.ErrInvalidTransition
		}
		if err := txRepo.UpdateStatus(ctx, id, next); err != nil {
			return err
		}

		m.Status = next
		match = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("match status changed", "match_id", id, "status", next)
	return s.toResponse(ctx, match)
}

// RecordEvent appends an event to a LIVE match. Events are ordered by
// their minute, insertion order breaking ties.
func (s *service) RecordEvent(ctx context.Context, id uint, req *matchModel.RecordEventRequest) (*matchModel.EventResponse, error) {
	eventType := matchModel.EventType(req.Type)
	if !eventType.Valid() {
		return nil, matchModel.ErrInvalidEventType
	}

	var event *matchModel.MatchEvent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		match, err := txRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if match.Status != matchModel.StatusLive {
			return matchModel.ErrMatchNotLive
		}
		if !match.Involves(req.TeamID) {
			return matchModel.ErrEventTeamNotPlaying
		}

		event = &matchModel.MatchEvent{
			MatchID:  id,
			Type:     eventType,
			TeamID:   req.TeamID,
			PlayerID: req.PlayerID,
			Minute:   req.Minute,
		}
		return txRepo.AddEvent(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	resp := matchModel.NewEventResponse(event)
	return &resp, nil
}

// Finish sets the final score, moves a LIVE match to FINISHED and
// applies the result to both teams' standings. The match row is locked
// for the whole transaction, so a second Finish on the same match sees
// FINISHED and fails without touching standings again.
func (s *service) Finish(ctx context.Context, id uint, req *matchModel.FinishMatchRequest) (*matchModel.MatchResponse, error) {
	if req.HomeScore < 0 || req.AwayScore < 0 {
		return nil, matchModel.ErrInvalidScore
	}

	var match *matchModel.Match
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		m, err := txRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if m.Status != matchModel.StatusLive {
			return matchModel.ErrMatchNotLive
		}

		if err := txRepo.Finish(ctx, id, req.HomeScore, req.AwayScore); err != nil {
			return err
		}

		m.Status = matchModel.StatusFinished
		m.HomeScore = req.HomeScore
		m.AwayScore = req.AwayScore

		if err := s.standings.ApplyFinished(ctx, tx, m); err != nil {
			return err
		}

		match = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("match finished",
		"match_id", id,
		"home_score", match.HomeScore,
		"away_score", match.AwayScore,
	)
	return s.toResponse(ctx, match)
}

// toResponse maps a match and its events to the API shape.
func (s *service) toResponse(ctx context.Context, match *matchModel.Match) (*matchModel.MatchResponse, error) {
	events, err := s.repo.ListEvents(ctx, match.ID)
	if err != nil {
		return nil, err
	}

	eventResponses := make([]matchModel.EventResponse, 0, len(events))
	for i := range events {
		eventResponses = append(eventResponses, matchModel.NewEventResponse(&events[i]))
	}

	return &matchModel.MatchResponse{
		ID:           match.ID,
		HomeTeamID:   match.HomeTeamID,
		AwayTeamID:   match.AwayTeamID,
		Stadium:      match.Stadium,
		TournamentID: match.TournamentID,
		StartTime:    match.StartTime,
		Status:       string(match.Status),
		HomeScore:    match.HomeScore,
		AwayScore:    match.AwayScore,
		ChatKey:      chat.MatchKey(match.ID),
		Events:       eventResponses,
	}, nil
}

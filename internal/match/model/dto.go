// Package model provides domain models and DTOs for match module.
package model

import "time"

// ScheduleMatchRequest represents the request to schedule a match.
type ScheduleMatchRequest struct {
	HomeTeamID   uint      `json:"home_team_id" binding:"required"`
	AwayTeamID   uint      `json:"away_team_id" binding:"required"`
	Stadium      string    `json:"stadium" binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	TournamentID *uint     `json:"tournament_id,omitempty"`
}

// RecordEventRequest represents the request to record an in-match event.
type RecordEventRequest struct {
	Type     string `json:"type" binding:"required"`
	TeamID   uint   `json:"team_id" binding:"required"`
	PlayerID *uint  `json:"player_id,omitempty"`
	Minute   int    `json:"minute"`
}

// FinishMatchRequest represents the request to finish a match with a
// final score.
type FinishMatchRequest struct {
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

// EventResponse represents a match event in API responses.
type EventResponse struct {
	ID       uint   `json:"id"`
	Type     string `json:"type"`
	TeamID   uint   `json:"team_id"`
	PlayerID *uint  `json:"player_id,omitempty"`
	Minute   int    `json:"minute"`
}

// MatchResponse represents a match with its ordered events.
type MatchResponse struct {
	ID           uint            `json:"id"`
	HomeTeamID   uint            `json:"home_team_id"`
	AwayTeamID   uint            `json:"away_team_id"`
	Stadium      string          `json:"stadium"`
	TournamentID *uint           `json:"tournament_id,omitempty"`
	StartTime    time.Time       `json:"start_time"`
	Status       string          `json:"status"`
	HomeScore    int             `json:"home_score"`
	AwayScore    int             `json:"away_score"`
	ChatKey      string          `json:"chat_key"`
	Events       []EventResponse `json:"events"`
}

// NewEventResponse maps a match event to its API shape.
func NewEventResponse(e *MatchEvent) EventResponse {
	return EventResponse{
		ID:       e.ID,
		Type:     string(e.Type),
		TeamID:   e.TeamID,
		PlayerID: e.PlayerID,
		Minute:   e.Minute,
	}
}

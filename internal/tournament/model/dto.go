// Package model provides domain models and DTOs for tournament module.
package model

import "time"

// CreateTournamentRequest represents the request to create a tournament.
// Zero-valued capacity and money fields fall back to league defaults.
type CreateTournamentRequest struct {
	Name            string    `json:"name" binding:"required"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	Location        string    `json:"location" binding:"required"`
	MaxTeams        int       `json:"max_teams"`
	RegistrationFee *int      `json:"registration_fee,omitempty"`
	PrizePool       *int      `json:"prize_pool,omitempty"`
	About           string    `json:"about"`
}

// JoinTournamentRequest represents the request to join a tournament.
type JoinTournamentRequest struct {
	TeamID uint `json:"team_id" binding:"required"`
}

// AdvanceRequest represents the request to advance a tournament's status.
type AdvanceRequest struct {
	Status string `json:"status" binding:"required"`
}

// TournamentResponse represents a tournament in API responses.
type TournamentResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	Location        string `json:"location"`
	TeamsRegistered int    `json:"teams_registered"`
	MaxTeams        int    `json:"max_teams"`
	RegistrationFee int    `json:"registration_fee"`
	PrizePool       int    `json:"prize_pool"`
	About           string `json:"about"`
}

// NewTournamentResponse maps a tournament entity to its API shape.
func NewTournamentResponse(t *Tournament, teamsRegistered int) *TournamentResponse {
	return &TournamentResponse{
		ID:              t.ID,
		Name:            t.Name,
		Status:          string(t.Status),
		StartDate:       t.StartDate.Format("2006-01-02"),
		EndDate:         t.EndDate.Format("2006-01-02"),
		Location:        t.Location,
		TeamsRegistered: teamsRegistered,
		MaxTeams:        t.MaxTeams,
		RegistrationFee: t.RegistrationFee,
		PrizePool:       t.PrizePool,
		About:           t.About,
	}
}

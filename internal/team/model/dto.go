// Package model provides domain models and DTOs for team module.
package model

// CreateTeamRequest represents the request to create a team.
// The captain is taken from the caller identity, not the body.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

// TeamResponse represents a team in API responses.
type TeamResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	PlayerCount   int    `json:"player_count"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	Points        int    `json:"points"`
	GoalsScored   int    `json:"goals_scored"`
	GoalsConceded int    `json:"goals_conceded"`
	CleanSheets   int    `json:"clean_sheets"`
}

// NewTeamResponse maps a team entity to its API shape. Roster
// membership beyond the captain is not modeled; the captain is the
// only counted player.
func NewTeamResponse(t *Team) *TeamResponse {
	return &TeamResponse{
		ID:            t.ID,
		Name:          t.Name,
		PlayerCount:   1,
		Wins:          t.Stats.Wins,
		Draws:         t.Stats.Draws,
		Losses:        t.Stats.Losses,
		Points:        t.Stats.Points,
		GoalsScored:   t.Stats.GoalsScored,
		GoalsConceded: t.Stats.GoalsConceded,
		CleanSheets:   t.Stats.CleanSheets,
	}
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Status is the lifecycle state of a match.
type Status string

// Match lifecycle: SCHEDULED -> LIVE -> FINISHED, with
// SCHEDULED -> CANCELLED as an alternate terminal branch. FINISHED and
// CANCELLED are terminal.
const (
	StatusScheduled Status = "SCHEDULED"
	StatusLive      Status = "LIVE"
	StatusFinished  Status = "FINISHED"
	StatusCancelled Status = "CANCELLED"
)

var transitions = map[Status][]Status{
	StatusScheduled: {StatusLive, StatusCancelled},
	StatusLive:      {StatusFinished},
	StatusFinished:  {},
	StatusCancelled: {},
}

// Valid reports whether the status is a known one.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether the status may move to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// EventType is the kind of an in-match event.
type EventType string

// Event types recorded during a live match.
const (
	EventGoal         EventType = "GOAL"
	EventYellowCard   EventType = "YELLOW_CARD"
	EventRedCard      EventType = "RED_CARD"
	EventSubstitution EventType = "SUBSTITUTION"
)

// Valid reports whether the event type is a known one.
func (e EventType) Valid() bool {
	switch e {
	case EventGoal, EventYellowCard, EventRedCard, EventSubstitution:
		return true
	}
	return false
}

// Match represents a match entity in the system.
// Matches the matches table schema. Scores are meaningful only once
// the match is FINISHED.
type Match struct {
	ID           uint      `gorm:"primaryKey;column:id"                                       json:"id"`
	HomeTeamID   uint      `gorm:"column:home_team_id;not null;index:idx_matches_home_team"   json:"home_team_id"`
	AwayTeamID   uint      `gorm:"column:away_team_id;not null;index:idx_matches_away_team"   json:"away_team_id"`
	Stadium      string    `gorm:"column:stadium;type:varchar(255);not null"                  json:"stadium"`
	TournamentID *uint     `gorm:"column:tournament_id;index:idx_matches_tournament"          json:"tournament_id,omitempty"`
	StartTime    time.Time `gorm:"column:start_time;not null"                json:"start_time"`
	Status       Status    `gorm:"column:status;type:varchar(16);not null;index"              json:"status"`
	HomeScore    int       `gorm:"column:home_score;not null;default:0"                       json:"home_score"`
	AwayScore    int       `gorm:"column:away_score;not null;default:0"                       json:"away_score"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"  json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"  json:"-"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (m *Match) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return nil
}

// Involves reports whether the team plays in this match.
func (m *Match) Involves(teamID uint) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// MatchEvent represents a single in-match occurrence. Events belong to
// exactly one match and are removed with it. Ordering within a match is
// by minute, insertion order breaking ties.
type MatchEvent struct {
	ID        uint      `gorm:"primaryKey;column:id"                                      json:"id"`
	MatchID   uint      `gorm:"column:match_id;not null;index:idx_match_events_match"     json:"match_id"`
	Type      EventType `gorm:"column:type;type:varchar(32);not null"                     json:"type"`
	TeamID    uint      `gorm:"column:team_id;not null"                                   json:"team_id"`
	PlayerID  *uint     `gorm:"column:player_id"                                          json:"player_id,omitempty"`
	Minute    int       `gorm:"column:minute;not null"                                    json:"minute"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (MatchEvent) TableName() string {
	return "match_events"
}

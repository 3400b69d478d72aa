package model

import (
	"time"

	"gorm.io/gorm"
)

// Status is the lifecycle state of a tournament. The lifecycle is
// ordered and monotonic: UPCOMING -> REGISTRATION_OPEN -> LIVE ->
// COMPLETED, never backwards.
type Status string

const (
	StatusUpcoming         Status = "UPCOMING"
	StatusRegistrationOpen Status = "REGISTRATION_OPEN"
	StatusLive             Status = "LIVE"
	StatusCompleted        Status = "COMPLETED"
)

var statusRank = map[Status]int{
	StatusUpcoming:         0,
	StatusRegistrationOpen: 1,
	StatusLive:             2,
	StatusCompleted:        3,
}

// Valid reports whether the status is a known one.
func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving to next preserves the
// monotonic lifecycle order.
func (s Status) CanTransitionTo(next Status) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return statusRank[next] > statusRank[s]
}

// Tournament represents a tournament entity in the system.
// Matches the tournaments table schema.
type Tournament struct {
	ID              uint      `gorm:"primaryKey;column:id"                                      json:"id"`
	Name            string    `gorm:"column:name;type:varchar(255);not null"                    json:"name"`
	Status          Status    `gorm:"column:status;type:varchar(32);not null;index"             json:"status"`
	StartDate       time.Time `gorm:"column:start_date;not null"                      json:"start_date"`
	EndDate         time.Time `gorm:"column:end_date;not null"                        json:"end_date"`
	Location        string    `gorm:"column:location;type:varchar(255);not null"                json:"location"`
	MaxTeams        int       `gorm:"column:max_teams;not null"                                 json:"max_teams"`
	RegistrationFee int       `gorm:"column:registration_fee;not null;default:0"                json:"registration_fee"`
	PrizePool       int       `gorm:"column:prize_pool;not null;default:0"                      json:"prize_pool"`
	About           string    `gorm:"column:about;type:text"                                    json:"about"`
	CreatedAt       time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Tournament) TableName() string {
	return "tournaments"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Tournament) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// TournamentTeam is the explicit membership association between a
// tournament and a team. The composite unique index makes duplicate
// joins impossible at the storage boundary.
type TournamentTeam struct {
	ID           uint      `gorm:"primaryKey;column:id"                                                      json:"id"`
	TournamentID uint      `gorm:"column:tournament_id;not null;uniqueIndex:idx_tournament_teams_membership" json:"tournament_id"`
	TeamID       uint      `gorm:"column:team_id;not null;uniqueIndex:idx_tournament_teams_membership"       json:"team_id"`
	JoinedAt     time.Time `gorm:"column:joined_at;not null;autoCreateTime"   json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (TournamentTeam) TableName() string {
	return "tournament_teams"
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Stats holds the aggregate performance counters of a team. They are
// derived exclusively from finished matches and are recomputable from
// the full match history at any time.
type Stats struct {
	Wins          int `gorm:"column:wins;not null;default:0"           json:"wins"`
	Draws         int `gorm:"column:draws;not null;default:0"          json:"draws"`
	Losses        int `gorm:"column:losses;not null;default:0"         json:"losses"`
	Points        int `gorm:"column:points;not null;default:0"         json:"points"`
	GoalsScored   int `gorm:"column:goals_scored;not null;default:0"   json:"goals_scored"`
	GoalsConceded int `gorm:"column:goals_conceded;not null;default:0" json:"goals_conceded"`
	CleanSheets   int `gorm:"column:clean_sheets;not null;default:0"   json:"clean_sheets"`
}

// Team represents a team entity in the system.
// Matches the teams table schema.
type Team struct {
	ID        uint      `gorm:"primaryKey;column:id"                                      json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex"        json:"name"`
	CaptainID uint      `gorm:"column:captain_id;not null;index:idx_teams_captain_id"     json:"captain_id"`
	Stats     Stats     `gorm:"embedded"                                                  json:"stats"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

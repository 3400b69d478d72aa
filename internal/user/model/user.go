package model

import (
	"time"

	"gorm.io/gorm"
)

// Role is the privilege level of a user.
type Role string

// Roles in ascending privilege order.
const (
	RoleUser        Role = "USER"
	RoleTeamCaptain Role = "TEAM_CAPTAIN"
	RoleAdmin       Role = "ADMIN"
)

var roleRank = map[Role]int{
	RoleUser:        0,
	RoleTeamCaptain: 1,
	RoleAdmin:       2,
}

// Valid reports whether the role is a known one.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Promote returns the higher-privileged of the current and target roles.
// Promotion is idempotent and never demotes: promoting an ADMIN to
// TEAM_CAPTAIN leaves the role at ADMIN.
func (r Role) Promote(target Role) Role {
	if roleRank[target] > roleRank[r] {
		return target
	}
	return r
}

// User represents a user entity in the system.
// Matches the users table schema.
type User struct {
	ID        uint      `gorm:"primaryKey;column:id"                                      json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"       json:"email"`
	FullName  string    `gorm:"column:full_name;type:varchar(255);not null"               json:"full_name"`
	Password  string    `gorm:"column:password;type:varchar(255);not null"                json:"-"`
	Role      Role      `gorm:"column:role;type:varchar(32);not null"        json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

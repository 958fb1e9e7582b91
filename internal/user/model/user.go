package model

import (
	"time"

	"gorm.io/gorm"
)

// Roles a profile may carry. Admin is assigned out of band, never through
// the profile update endpoint.
const (
	RoleDeveloper = "developer"
	RoleLearner   = "learner"
	RoleAdmin     = "admin"
)

// User represents a user profile snapshot in the system.
// The user ID comes from the external identity provider.
// Matches the users table schema.
type User struct {
	UserID    string    `gorm:"primaryKey;column:user_id;type:varchar(255)"        json:"user_id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"             json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255)"                     json:"email"`
	Role      string    `gorm:"column:role;type:varchar(32)"                       json:"role,omitempty"`
	Skills    []string  `gorm:"column:skills;serializer:json;type:text"           json:"skills"`
	LinkedIn  string    `gorm:"column:linkedin;type:varchar(512)"                  json:"linkedin,omitempty"`
	GitHub    string    `gorm:"column:github;type:varchar(512)"                    json:"github,omitempty"`
	Avatar    string    `gorm:"column:avatar;type:varchar(512)"                    json:"avatar,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                         json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"                         json:"-"`
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

// IsAdmin reports whether the profile carries the platform admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

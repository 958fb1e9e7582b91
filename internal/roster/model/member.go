package model

import (
	"time"
)

// ProjectMember represents one roster entry of a project team.
// user_name and member_role are a snapshot taken when the member joined;
// later profile changes do not propagate into the roster.
// Matches the project_members table schema.
type ProjectMember struct {
	ID         int64     `gorm:"primaryKey;column:id"                                                                      json:"id"`
	ProjectID  string    `gorm:"column:project_id;type:varchar(64);not null;uniqueIndex:idx_members_project_user"          json:"project_id"`
	UserID     string    `gorm:"column:user_id;type:varchar(255);not null;uniqueIndex:idx_members_project_user"            json:"user_id"`
	UserName   string    `gorm:"column:user_name;type:varchar(255);not null"                                               json:"user_name"`
	MemberRole string    `gorm:"column:member_role;type:varchar(32)"                                                       json:"role,omitempty"`
	JoinedAt   time.Time `gorm:"column:joined_at;not null"                                                                 json:"joined_at"`
}

// TableName specifies the table name for GORM.
func (ProjectMember) TableName() string {
	return "project_members"
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Join request lifecycle states. A request is created pending and moves
// exactly once to accepted or rejected; terminal states never change.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Candidate roles on a join request.
const (
	RoleDeveloper = "developer"
	RoleLearner   = "learner"
)

// JoinRequest represents an application to join a project team.
// Matches the join_requests table schema.
type JoinRequest struct {
	RequestID       string     `gorm:"primaryKey;column:request_id;type:varchar(64)"                                json:"request_id"`
	ProjectID       string     `gorm:"column:project_id;type:varchar(64);not null;index:idx_requests_project_id"    json:"project_id"`
	UserID          string     `gorm:"column:user_id;type:varchar(255);not null;index:idx_requests_user_id"         json:"user_id"`
	UserName        string     `gorm:"column:user_name;type:varchar(255);not null"                                  json:"user_name"`
	Role            string     `gorm:"column:role;type:varchar(32);not null"                                        json:"role"`
	Skills          []string   `gorm:"column:skills;serializer:json;type:text"                                      json:"skills"`
	Message         string     `gorm:"column:message;type:text"                                                     json:"message,omitempty"`
	MatchPercentage int        `gorm:"column:match_percentage;not null"                                             json:"match_percentage"`
	Status          string     `gorm:"column:status;type:varchar(32);not null;index:idx_requests_status"            json:"status"`
	DecidedAt       *time.Time `gorm:"column:decided_at"                                                            json:"decided_at,omitempty"`
	CreatedAt       time.Time  `gorm:"column:created_at;not null"                                                   json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;not null"                                                   json:"-"`
}

// TableName specifies the table name for GORM.
func (JoinRequest) TableName() string {
	return "join_requests"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (j *JoinRequest) BeforeUpdate(tx *gorm.DB) error {
	j.UpdatedAt = time.Now()
	return nil
}

// IsTerminal reports whether the request has been decided.
func (j *JoinRequest) IsTerminal() bool {
	return j.Status == StatusAccepted || j.Status == StatusRejected
}

// ValidRole reports whether the role is an allowed candidate role.
func ValidRole(role string) bool {
	return role == RoleDeveloper || role == RoleLearner
}

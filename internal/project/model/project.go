package model

import (
	"time"

	"gorm.io/gorm"
)

// Moderation states for a project listing. New projects start pending and
// become visible for joining once an admin approves them.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Project represents a collaboration project in the catalog.
// Matches the projects table schema.
type Project struct {
	ProjectID      string    `gorm:"primaryKey;column:project_id;type:varchar(64)"                       json:"project_id"`
	Title          string    `gorm:"column:title;type:varchar(255);not null"                             json:"title"`
	Description    string    `gorm:"column:description;type:text"                                        json:"description"`
	Domain         string    `gorm:"column:domain;type:varchar(32);not null;index:idx_projects_domain"   json:"domain"`
	Difficulty     string    `gorm:"column:difficulty;type:varchar(32);not null"                         json:"difficulty"`
	SkillsRequired []string  `gorm:"column:skills_required;serializer:json;type:text"                    json:"skills_required"`
	TeamSize       int       `gorm:"column:team_size;not null;default:1"                                 json:"team_size"`
	ReferenceURL   string    `gorm:"column:reference_url;type:varchar(512)"                              json:"reference_url,omitempty"`
	CreatedBy      string    `gorm:"column:created_by;type:varchar(255);not null;index:idx_projects_created_by" json:"created_by"`
	Status         string    `gorm:"column:status;type:varchar(32);not null;index:idx_projects_status"   json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"                                          json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"                                          json:"-"`
}

// TableName specifies the table name for GORM.
func (Project) TableName() string {
	return "projects"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Project) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

// ValidDomain reports whether the domain is one of the portal's categories.
func ValidDomain(domain string) bool {
	switch domain {
	case "ai", "web", "iot", "cyber":
		return true
	}
	return false
}

// ValidDifficulty reports whether the difficulty is an allowed value.
func ValidDifficulty(difficulty string) bool {
	switch difficulty {
	case "easy", "medium", "hard":
		return true
	}
	return false
}

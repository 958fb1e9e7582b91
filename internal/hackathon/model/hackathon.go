// Package model provides domain models and DTOs for the hackathon module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Hackathon lifecycle states.
const (
	StatusUpcoming  = "Upcoming"
	StatusOngoing   = "Ongoing"
	StatusCompleted = "Completed"
)

// Hackathon formats.
const (
	FormatVirtual  = "Virtual"
	FormatInPerson = "In-Person"
	FormatHybrid   = "Hybrid"
)

// Hackathon represents a hackathon directory entry.
// Matches the hackathons table schema.
type Hackathon struct {
	HackathonID string    `gorm:"primaryKey;column:hackathon_id;type:varchar(64)"                 json:"hackathon_id"`
	EventName   string    `gorm:"column:event_name;type:varchar(255);not null"                    json:"event_name"`
	EventDate   string    `gorm:"column:event_date;type:varchar(64)"                              json:"event_date"`
	Status      string    `gorm:"column:status;type:varchar(32);not null;index:idx_hackathons_status" json:"status"`
	Category    string    `gorm:"column:category;type:varchar(128)"                               json:"category"`
	Format      string    `gorm:"column:format;type:varchar(32)"                                  json:"format"`
	JoiningURL  string    `gorm:"column:joining_url;type:text"                                    json:"joining_url,omitempty"`
	CreatedBy   string    `gorm:"column:created_by;type:varchar(255);not null"                    json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"                                      json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"                                      json:"-"`
}

// TableName specifies the table name for GORM.
func (Hackathon) TableName() string {
	return "hackathons"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (h *Hackathon) BeforeUpdate(tx *gorm.DB) error {
	h.UpdatedAt = time.Now()
	return nil
}

// ValidStatus reports whether status is one of the allowed lifecycle states.
func ValidStatus(status string) bool {
	return status == StatusUpcoming || status == StatusOngoing || status == StatusCompleted
}

// ValidFormat reports whether format is one of the allowed event formats.
func ValidFormat(format string) bool {
	return format == FormatVirtual || format == FormatInPerson || format == FormatHybrid
}

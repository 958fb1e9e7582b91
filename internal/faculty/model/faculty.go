// Package model provides domain models and DTOs for the faculty module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Faculty represents a faculty directory entry.
// Matches the faculty table schema.
type Faculty struct {
	FacultyID   string    `gorm:"primaryKey;column:faculty_id;type:varchar(64)" json:"faculty_id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"        json:"name"`
	Department  string    `gorm:"column:department;type:varchar(255)"          json:"department"`
	Designation string    `gorm:"column:designation;type:varchar(255)"         json:"designation"`
	Domain      string    `gorm:"column:domain;type:varchar(64)"               json:"domain"`
	Email       string    `gorm:"column:email;type:varchar(255)"               json:"email"`
	Skills      []string  `gorm:"column:skills;serializer:json;type:text"      json:"skills"`
	Description string    `gorm:"column:description;type:text"                 json:"description,omitempty"`
	Avatar      string    `gorm:"column:avatar;type:text"                      json:"avatar,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"                   json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"                   json:"-"`
}

// TableName specifies the table name for GORM.
func (Faculty) TableName() string {
	return "faculty"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (f *Faculty) BeforeUpdate(tx *gorm.DB) error {
	f.UpdatedAt = time.Now()
	return nil
}

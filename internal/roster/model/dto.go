// Package model provides domain models and DTOs for the roster module.
package model

import "time"

// ProfilePlaceholder is shown when a member's profile cannot be loaded.
const ProfilePlaceholder = "Not available"

// MemberDetail is a roster entry enriched with profile data at read time.
// Email and skills come from the member's current profile; a missing
// profile degrades to placeholder values instead of failing the read.
type MemberDetail struct {
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	Role     string    `json:"role,omitempty"`
	JoinedAt time.Time `json:"joined_at"`
	Email    string    `json:"email"`
	Skills   []string  `json:"skills"`
}

// RosterResponse represents the team roster of a project.
type RosterResponse struct {
	ProjectID string         `json:"project_id"`
	Members   []MemberDetail `json:"members"`
	Total     int            `json:"total"`
}

// Package model provides domain models and DTOs for the project module.
package model

import "time"

// CreateProjectRequest represents the request to create a project.
type CreateProjectRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Domain         string   `json:"domain" binding:"required"`
	Difficulty     string   `json:"difficulty" binding:"required"`
	SkillsRequired []string `json:"skills_required"`
	TeamSize       int      `json:"team_size"`
	ReferenceURL   string   `json:"reference_url"`
}

// UpdateProjectRequest represents a partial project update.
// Empty fields leave the stored values untouched.
type UpdateProjectRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Domain         string   `json:"domain"`
	Difficulty     string   `json:"difficulty"`
	SkillsRequired []string `json:"skills_required"`
	TeamSize       int      `json:"team_size"`
	ReferenceURL   string   `json:"reference_url"`
}

// ModerateProjectRequest represents an admin moderation decision.
type ModerateProjectRequest struct {
	Decision string `json:"decision" binding:"required"`
}

// ListFilter narrows project listings.
type ListFilter struct {
	Domain     string
	Difficulty string
	Status     string
}

// TeamEntry is a roster entry as shown on a project.
// user_name and role are a point-in-time snapshot taken at join time.
type TeamEntry struct {
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	Role     string    `json:"role,omitempty"`
	JoinedAt time.Time `json:"joined_at"`
}

// ProjectResponse is a project with its derived membership state.
// CurrentMembers is always computed from the roster, never stored.
type ProjectResponse struct {
	Project
	CurrentMembers int         `json:"current_members"`
	Team           []TeamEntry `json:"team"`
}

// ProjectListResponse wraps a project listing.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int               `json:"total"`
}

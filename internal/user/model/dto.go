// Package model provides domain models and DTOs for the user module.
package model

// UpdateProfileRequest represents a merge-style profile update.
// Empty fields leave the stored values untouched.
type UpdateProfileRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Skills   []string `json:"skills"`
	LinkedIn string   `json:"linkedin"`
	GitHub   string   `json:"github"`
	Avatar   string   `json:"avatar"`
}

// ProfileResponse wraps a user profile in API responses.
type ProfileResponse struct {
	User User `json:"user"`
}

// Package model provides domain models and DTOs for the joinrequest module.
package model

// Sort orders for project request listings.
const (
	SortRecent = "recent"
	SortMatch  = "match"
)

// SubmitRequest represents a candidate's application to join a project.
type SubmitRequest struct {
	Role    string   `json:"role" binding:"required"`
	Skills  []string `json:"skills" binding:"required"`
	Message string   `json:"message"`
}

// DecideRequest represents the owner's decision on a pending request.
type DecideRequest struct {
	Outcome string `json:"outcome" binding:"required"`
}

// RequestResponse wraps a single join request.
type RequestResponse struct {
	Request JoinRequest `json:"request"`
}

// RequestListResponse wraps a join request listing.
type RequestListResponse struct {
	Requests []JoinRequest `json:"requests"`
	Total    int           `json:"total"`
}

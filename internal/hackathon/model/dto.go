package model

// CreateHackathonRequest represents a hackathon creation payload.
type CreateHackathonRequest struct {
	EventName  string `json:"event_name" binding:"required"`
	EventDate  string `json:"event_date"`
	Status     string `json:"status" binding:"required"`
	Category   string `json:"category"`
	Format     string `json:"format" binding:"required"`
	JoiningURL string `json:"joining_url"`
}

// UpdateHackathonRequest represents a hackathon update payload.
// Nil fields are left unchanged.
type UpdateHackathonRequest struct {
	EventName  *string `json:"event_name"`
	EventDate  *string `json:"event_date"`
	Status     *string `json:"status"`
	Category   *string `json:"category"`
	Format     *string `json:"format"`
	JoiningURL *string `json:"joining_url"`
}

// HackathonResponse wraps a single hackathon entry.
type HackathonResponse struct {
	Hackathon Hackathon `json:"hackathon"`
}

// HackathonListResponse wraps a hackathon listing.
type HackathonListResponse struct {
	Hackathons []Hackathon `json:"hackathons"`
	Total      int         `json:"total"`
}

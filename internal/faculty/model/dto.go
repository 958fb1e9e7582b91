package model

// CreateFacultyRequest represents a directory entry creation payload.
type CreateFacultyRequest struct {
	Name        string   `json:"name" binding:"required"`
	Department  string   `json:"department"`
	Designation string   `json:"designation"`
	Domain      string   `json:"domain"`
	Email       string   `json:"email"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
	Avatar      string   `json:"avatar"`
}

// UpdateFacultyRequest represents a directory entry update payload.
// Nil fields are left unchanged.
type UpdateFacultyRequest struct {
	Name        *string   `json:"name"`
	Department  *string   `json:"department"`
	Designation *string   `json:"designation"`
	Domain      *string   `json:"domain"`
	Email       *string   `json:"email"`
	Skills      *[]string `json:"skills"`
	Description *string   `json:"description"`
	Avatar      *string   `json:"avatar"`
}

// FacultyResponse wraps a single faculty entry.
type FacultyResponse struct {
	Faculty Faculty `json:"faculty"`
}

// FacultyListResponse wraps a faculty directory listing.
type FacultyListResponse struct {
	Faculty []Faculty `json:"faculty"`
	Total   int       `json:"total"`
}

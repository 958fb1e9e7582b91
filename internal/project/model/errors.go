package model

import "errors"

var (
	// ErrProjectNotFound indicates that the requested project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidTitle indicates an empty or oversized title.
	ErrInvalidTitle = errors.New("title must be between 1 and 255 characters")
	// ErrInvalidDomain indicates a domain outside the portal categories.
	ErrInvalidDomain = errors.New("domain must be one of: ai, web, iot, cyber")
	// ErrInvalidDifficulty indicates a difficulty outside the allowed values.
	ErrInvalidDifficulty = errors.New("difficulty must be one of: easy, medium, hard")
	// ErrInvalidTeamSize indicates a non-positive team size.
	ErrInvalidTeamSize = errors.New("team_size must be greater than 0")
	// ErrInvalidDecision indicates a moderation decision outside approved/rejected.
	ErrInvalidDecision = errors.New("decision must be approved or rejected")
	// ErrNotProjectOwner indicates the caller is neither the owner nor an admin.
	ErrNotProjectOwner = errors.New("only the project owner or an admin may do this")
)

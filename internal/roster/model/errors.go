package model

import "errors"

var (
	// ErrTeamFull indicates the project team is at capacity and capacity
	// enforcement is enabled.
	ErrTeamFull = errors.New("project team is full")
	// ErrInvalidMember indicates an empty user id or user name.
	ErrInvalidMember = errors.New("user_id and user_name are required")
)

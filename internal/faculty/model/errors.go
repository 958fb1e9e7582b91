package model

import "errors"

var (
	// ErrFacultyNotFound indicates that the requested faculty entry does not exist.
	ErrFacultyNotFound = errors.New("faculty entry not found")
	// ErrNotAdmin indicates a directory write by a non-admin actor.
	ErrNotAdmin = errors.New("directory writes require admin role")
)

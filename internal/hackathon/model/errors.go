package model

import "errors"

var (
	// ErrHackathonNotFound indicates that the requested hackathon does not exist.
	ErrHackathonNotFound = errors.New("hackathon not found")
	// ErrInvalidStatus indicates a status outside Upcoming/Ongoing/Completed.
	ErrInvalidStatus = errors.New("status must be Upcoming, Ongoing or Completed")
	// ErrInvalidFormat indicates a format outside Virtual/In-Person/Hybrid.
	ErrInvalidFormat = errors.New("format must be Virtual, In-Person or Hybrid")
	// ErrNotAdmin indicates a directory write by a non-admin actor.
	ErrNotAdmin = errors.New("directory writes require admin role")
)

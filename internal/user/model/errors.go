package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested profile does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUserID indicates that the provided user ID is invalid (e.g., empty).
	ErrInvalidUserID = errors.New("invalid user ID")
	// ErrInvalidRole indicates a role outside the allowed developer/learner values.
	ErrInvalidRole = errors.New("role must be developer or learner")
	// ErrNotProfileOwner indicates an attempt to update someone else's profile.
	ErrNotProfileOwner = errors.New("profile can only be updated by its owner")
)

package model

import "errors"

var (
	// ErrRequestNotFound indicates that the requested join request does not exist.
	ErrRequestNotFound = errors.New("join request not found")
	// ErrInvalidRole indicates a role outside the allowed developer/learner values.
	ErrInvalidRole = errors.New("role must be developer or learner")
	// ErrEmptySkills indicates a submission without any declared skills.
	ErrEmptySkills = errors.New("skills list cannot be empty")
	// ErrInvalidOutcome indicates a decision outside accepted/rejected.
	ErrInvalidOutcome = errors.New("outcome must be accepted or rejected")
	// ErrAlreadyDecided indicates a decision on a request already in a
	// terminal state; terminal states are never overwritten.
	ErrAlreadyDecided = errors.New("join request is already decided")
	// ErrProjectNotJoinable indicates the target project is not approved
	// for joining.
	ErrProjectNotJoinable = errors.New("project is not open for join requests")
	// ErrNotRequestOwner indicates an attempt to read someone else's requests.
	ErrNotRequestOwner = errors.New("requests can only be listed by their owner")
)

package services

import "errors"

// Validation and permission errors are surfaced to the caller as-is; the
// handler layer maps them onto HTTP statuses. Anything else is treated as a
// transient infrastructure failure.
var (
	ErrDuplicateName       = errors.New("an active channel with that alias already exists")
	ErrInvalidParticipants = errors.New("a direct conversation requires two distinct participants")
	ErrEmptyContent        = errors.New("message content cannot be empty")
	ErrInvalidReply        = errors.New("replied message must belong to the same container")
	ErrPermissionDenied    = errors.New("access to this container was denied")
	ErrNotFound            = errors.New("record not found")
)

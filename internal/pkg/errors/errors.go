package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for records that fail validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict marks writes that collide with an existing unique record.
	ErrConflict = errors.New("conflict")
)

package domain

import "errors"

var (
	// ErrInvalidArgument is returned when a caller request misses required fields.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInternal is returned when the messaging gateway rejects a caller request.
	ErrInternal = errors.New("internal error")
)

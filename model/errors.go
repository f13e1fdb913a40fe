package model

import "github.com/pkg/errors"

var (
	// ErrOutOfRange indicates a coordinate or pattern placement outside grid bounds.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrInvalidParameter indicates a malformed argument, e.g. a probability
	// outside [0,1] or non-positive grid dimensions.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrReentrantMutation indicates a subscriber attempted to mutate the grid
	// from inside its change notification.
	ErrReentrantMutation = errors.New("reentrant mutation during notification")
)

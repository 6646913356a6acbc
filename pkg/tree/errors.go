package tree

import "errors"

var (
	// ErrOutOfRange is returned when an index argument is outside the arena bounds.
	ErrOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned when the target node does not exist.
	ErrNotFound = errors.New("node not found")
	// ErrInvalidOperation is returned for structurally disallowed requests,
	// like deleting the root.
	ErrInvalidOperation = errors.New("invalid operation")
)

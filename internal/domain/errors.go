package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness constraint was violated.
	ErrConflict = errors.New("already exists")
)

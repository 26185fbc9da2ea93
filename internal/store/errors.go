package store

import "errors"

var (
	// ErrNotFound is returned when no record exists under the given key.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an insert would overwrite an existing key.
	ErrConflict = errors.New("record already exists")

	// ErrExplicitID is returned when a caller tries to insert a pizza with a
	// pre-set id. IDs are assigned by the store only.
	ErrExplicitID = errors.New("explicit id not allowed")
)

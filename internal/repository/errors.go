package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when an account insert collides on
	// the unique email column.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrPetUnavailable is returned when an adoption request targets a
	// pet that is no longer in the not-adopted state.
	ErrPetUnavailable = errors.New("pet is not available for adoption")
)

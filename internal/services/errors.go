package services

import "errors"

var (
	// ErrInvalidAge is returned at signup when the age is not numeric.
	ErrInvalidAge = errors.New("age must be numeric")

	// ErrInvalidEmail is returned at signup when the email is malformed.
	ErrInvalidEmail = errors.New("a valid email is required")

	// ErrEmptyPassword is returned at signup when the password is empty.
	ErrEmptyPassword = errors.New("a password is required")

	// ErrDuplicateAccount is returned at signup when the email is taken.
	ErrDuplicateAccount = errors.New("the email is already registered")

	// ErrInvalidCredentials is returned at login for a bad email/password
	// pair. Deliberately indistinct about which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidBreed is returned when a pet's breed is outside the enum.
	ErrInvalidBreed = errors.New("unknown breed")

	// ErrInvalidSize is returned when a pet's size is outside the enum.
	ErrInvalidSize = errors.New("unknown size")

	// ErrNotOwner is returned when a caller acts on a resource owned by
	// another account.
	ErrNotOwner = errors.New("resource belongs to another account")
)

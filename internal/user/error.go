package user

import "errors"

var (
	// -- Validation & Input --
	ErrUsernameTaken  = errors.New("username already registered")
	ErrInvalidContact = errors.New("contact number must be 10-13 digits")
	ErrInvalidCampus  = errors.New("unknown campus")

	// -- Authentication --
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)

package auth

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrRegistrationFailed is returned when the account could not be stored,
	// including when the email is already taken.
	ErrRegistrationFailed = errors.New("could not create account")
	ErrInvalidInput       = errors.New("email and password are required")
)

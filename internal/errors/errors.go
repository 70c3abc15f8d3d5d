package errors

import (
	"errors"
	"fmt"
)

// Common error types shared by the stores and services
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Store errors
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate record")

	// Request errors
	ErrInvalidID      = errors.New("invalid identifier")
	ErrInvalidRequest = errors.New("invalid request")

	// General errors
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

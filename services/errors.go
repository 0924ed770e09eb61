package services

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrMealNotFound       = errors.New("meal not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation marks bad input rejected before any write.
	ErrValidation = errors.New("validation failed")

	// ErrCodeCapacity means unique-code generation hit its attempt cap.
	// With 62^10 combinations this implies a broken uniqueness check or
	// exhausted identifier space, so it surfaces as an internal error.
	ErrCodeCapacity = errors.New("unique code generation exceeded attempt limit")
)

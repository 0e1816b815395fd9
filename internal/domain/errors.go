package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrMissingDescription is returned when a task is created without a description.
	ErrMissingDescription = fmt.Errorf("%w: description is required", ErrValidation)

	// ErrEmptyDescription is returned when an update explicitly sets an empty description.
	ErrEmptyDescription = fmt.Errorf("%w: description cannot be empty", ErrValidation)

	// ErrInvalidID is returned when a task ID is not a positive integer.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)
)

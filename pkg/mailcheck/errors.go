package mailcheck

import "errors"

// Package-specific errors
var (
	// ErrContractViolation is returned when a candidate value does not expose
	// a conforming IsValid(string) bool method. It surfaces at construction or
	// registration time only, never during validation calls.
	ErrContractViolation = errors.New("candidate does not satisfy the validator contract")

	// ErrDuplicateValidator is returned when registering a name that is already taken.
	ErrDuplicateValidator = errors.New("validator name already registered")

	// ErrUnknownValidator is returned when resolving a name that was never registered.
	ErrUnknownValidator = errors.New("validator is not registered")
)

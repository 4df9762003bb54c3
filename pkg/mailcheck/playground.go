package mailcheck

import "github.com/go-playground/validator/v10"

// Shared instance: the library caches compiled rules per instance and is
// safe for concurrent use.
var validate = validator.New()

// PlaygroundValidator checks addresses with the general-purpose
// go-playground/validator library using its "email" rule. The exact grammar
// accepted is whatever that library's rule accepts.
type PlaygroundValidator struct{}

// NewPlaygroundValidator returns a validator backed by go-playground/validator.
func NewPlaygroundValidator() *PlaygroundValidator {
	return &PlaygroundValidator{}
}

func (*PlaygroundValidator) IsValid(email string) bool {
	return validate.Var(email, "required,email") == nil
}

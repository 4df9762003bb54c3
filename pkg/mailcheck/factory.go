package mailcheck

import "fmt"

// New is the factory boundary for statically typed callers. It is an identity
// passthrough: the returned value is exactly the argument. Its purpose is the
// parameter type, which makes the compiler reject any value that does not
// expose IsValid(string) bool.
func New(v Validator) Validator {
	return v
}

// FromAny is the factory boundary for callers holding a value typed any,
// where the compiler cannot perform the check New relies on. The dynamic type
// must satisfy the Validator contract; anything else is rejected with
// ErrContractViolation before it can ever be invoked.
func FromAny(candidate any) (Validator, error) {
	v, ok := candidate.(Validator)
	if !ok {
		return nil, fmt.Errorf("%w: %T does not implement IsValid(string) bool", ErrContractViolation, candidate)
	}
	return New(v), nil
}

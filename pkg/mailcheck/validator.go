package mailcheck

// Validator is the contract every email validation strategy satisfies.
// Implementations report whether a string is an acceptable email address.
// They always return a boolean: no error channel, no panic, no side effects.
type Validator interface {
	IsValid(email string) bool
}

// Func adapts a plain string predicate into a Validator, so any
// string-to-bool routine (including a direct third-party library call) can be
// used as a strategy without declaring a named type.
type Func func(email string) bool

func (f Func) IsValid(email string) bool {
	return f(email)
}

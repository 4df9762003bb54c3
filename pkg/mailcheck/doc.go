// Package mailcheck provides interchangeable email validation strategies
// behind a single contract, a factory that gatekeeps that contract, and a
// named registry of validators.
//
// The contract is deliberately minimal: a Validator answers one question,
// "is this string a valid email address", with a plain boolean. There is no
// error channel and no explanation of failure; strategies differ only in
// which strings they accept. Three strategies ship with the package, two
// delegating to third-party validation libraries and one a naive local
// check, and any string predicate can join them through the Func adapter.
//
// # Architecture
//
// Each strategy lives in its own file and holds no state; all of them are
// safe for concurrent use. The factory comes in two forms: New is an
// identity passthrough whose only job is its parameter type, letting the
// compiler reject non-conforming values, and FromAny performs the same
// capability check at runtime for values typed any, failing with
// ErrContractViolation. Registry layers a mutex-guarded name-to-validator
// map on top of FromAny so contract violations surface at registration time,
// never during validation calls.
//
// # Usage
//
//	v1 := mailcheck.New(mailcheck.NewPlaygroundValidator())
//	v2 := mailcheck.New(mailcheck.NewAddressValidator())
//	v3 := mailcheck.New(mailcheck.NewNaiveValidator())
//
//	v1.IsValid("myemail@mail.com") // true
//	v3.IsValid("invalid@mail")     // false: no ".com"
//
//	reg := mailcheck.NewRegistry()
//	_ = reg.Register("strict", v1)
//	_ = reg.Register("naive", v3)
//	results := reg.Evaluate("myemail@mail.com") // map[naive:true strict:true]
//
// # Error Handling
//
// The sentinel errors ErrContractViolation, ErrDuplicateValidator and
// ErrUnknownValidator can be matched with errors.Is. IsValid itself never
// fails: implementations return a boolean in all cases.
package mailcheck

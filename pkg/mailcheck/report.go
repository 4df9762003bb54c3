package mailcheck

import "github.com/samber/lo"

// Evaluate runs each validator in the set against the same input and returns
// a name-to-verdict report. The set itself is not modified.
func Evaluate(validators map[string]Validator, email string) map[string]bool {
	return lo.MapValues(validators, func(v Validator, _ string) bool {
		return v.IsValid(email)
	})
}

package mailcheck

import "strings"

// NaiveValidator is a deliberately crude strategy: an address passes when it
// contains both "@" and ".com". It rejects valid addresses on other TLDs and
// accepts malformed strings like "not-an-email@.com". The point is to make
// the strategies' interchangeability observable, not to be correct.
type NaiveValidator struct{}

// NewNaiveValidator returns the substring-based validator.
func NewNaiveValidator() *NaiveValidator {
	return &NaiveValidator{}
}

func (*NaiveValidator) IsValid(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".com")
}

package mailcheck

import "github.com/wneessen/go-mail"

// AddressValidator delegates to go-mail, a library specialized in email
// handling: an address is valid when go-mail accepts it as a message
// recipient. The accepted grammar is defined by that library.
type AddressValidator struct{}

// NewAddressValidator returns a validator backed by go-mail address parsing.
func NewAddressValidator() *AddressValidator {
	return &AddressValidator{}
}

func (*AddressValidator) IsValid(email string) bool {
	return mail.NewMsg().To(email) == nil
}

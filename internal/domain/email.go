package domain

import (
	"errors"
	"net/mail"
	"strings"
)

var ErrEmailInvalid = errors.New("invalid email address")

// EmailAddress is a validated email address.
type EmailAddress struct {
	val string
}

// ParseEmailAddress trims the input and validates it as a bare address
// (no display-name part).
func ParseEmailAddress(s string) (EmailAddress, error) {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return EmailAddress{}, ErrEmailInvalid
	}
	return EmailAddress{val: s}, nil
}

func (e EmailAddress) Value() string  { return e.val }
func (e EmailAddress) String() string { return e.val }

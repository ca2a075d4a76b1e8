package domain

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrUsernameEmpty        = errors.New("username cannot be empty")
	ErrUsernameTooShort     = errors.New("username must be at least 3 characters long")
	ErrUsernameTooLong      = errors.New("username cannot exceed 24 characters")
	ErrUsernameFirstChar    = errors.New("username must start with a letter")
	ErrUsernameInvalidChars = errors.New("username can only contain letters, numbers, dashes and underscores")
)

const (
	usernameMinLen = 3
	usernameMaxLen = 24
)

// Username is a validated display name. Comparison is exact: case is
// preserved and never folded.
type Username struct {
	val string
}

// ParseUsername trims the input and validates length and character classes.
func ParseUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Username{}, ErrUsernameEmpty
	}

	n := utf8.RuneCountInString(s)
	if n < usernameMinLen {
		return Username{}, ErrUsernameTooShort
	}
	if n > usernameMaxLen {
		return Username{}, ErrUsernameTooLong
	}

	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(first) {
		return Username{}, ErrUsernameFirstChar
	}

	for _, r := range s {
		if !isUsernameRune(r) {
			return Username{}, ErrUsernameInvalidChars
		}
	}

	return Username{val: s}, nil
}

func isUsernameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}

func (u Username) Value() string  { return u.val }
func (u Username) String() string { return u.val }

var (
	ErrGroupnameEmpty   = errors.New("group name cannot be empty")
	ErrGroupnameTooLong = errors.New("group name cannot exceed 255 characters")
)

const groupnameMaxLen = 255

// Groupname is a validated group display name. Two names differing only by
// case are distinct.
type Groupname struct {
	val string
}

// ParseGroupname trims the input and validates its length.
func ParseGroupname(s string) (Groupname, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Groupname{}, ErrGroupnameEmpty
	}
	if utf8.RuneCountInString(s) > groupnameMaxLen {
		return Groupname{}, ErrGroupnameTooLong
	}
	return Groupname{val: s}, nil
}

func (g Groupname) Value() string  { return g.val }
func (g Groupname) String() string { return g.val }

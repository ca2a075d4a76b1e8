package domain

import (
	"errors"
	"testing"
)

func TestParseEmailAddress(t *testing.T) {
	valid := []string{
		"bob@example.com",
		"alice.smith@mail.example.org",
		"  padded@example.com  ",
		"plus+tag@example.com",
	}
	for _, input := range valid {
		if _, err := ParseEmailAddress(input); err != nil {
			t.Errorf("ParseEmailAddress(%q) failed: %v", input, err)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"bob@",
		"Bob <bob@example.com>",
		"two@at@example.com",
	}
	for _, input := range invalid {
		if _, err := ParseEmailAddress(input); !errors.Is(err, ErrEmailInvalid) {
			t.Errorf("ParseEmailAddress(%q): got %v, want %v", input, err, ErrEmailInvalid)
		}
	}
}

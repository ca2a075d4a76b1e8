package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestParseUserID_Valid(t *testing.T) {
	cases := []string{
		"019b14ca-c11a-7882-ac00-0e88e8ba5e84",
		"019b14cac11a7882ac000e88e8ba5e84",
		"      019b14cac11a7882ac000e88e8ba5e84",
		"019b14ca-c11a-7882-ac00-0e88e8ba5e84     ",
	}

	for _, input := range cases {
		id, err := ParseUserID(input)
		if err != nil {
			t.Errorf("ParseUserID(%q) failed: %v", input, err)
			continue
		}
		want := strings.ReplaceAll(strings.TrimSpace(input), "-", "")
		got := strings.ReplaceAll(id.String(), "-", "")
		if got != want {
			t.Errorf("ParseUserID(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestParseUserID_Invalid(t *testing.T) {
	cases := []struct {
		input string
		want  error
	}{
		{"", ErrIDMalformed},
		{"not-a-uuid", ErrIDMalformed},
		{"00000000-0000-0000-0000-000000000000", ErrIDZero},
		{"00000000000000000000000000000000", ErrIDZero},
		{"ffffffff-ffff-ffff-ffff-ffffffffffff", ErrIDMax},
		{"ffffffffffffffffffffffffffffffff", ErrIDMax},
	}

	for _, tc := range cases {
		_, err := ParseUserID(tc.input)
		if !errors.Is(err, tc.want) {
			t.Errorf("ParseUserID(%q): got %v, want %v", tc.input, err, tc.want)
		}
	}
}

func TestNewUserID_RejectsSentinels(t *testing.T) {
	if _, err := NewUserID(uuid.Nil); !errors.Is(err, ErrIDZero) {
		t.Errorf("zero UUID: got %v, want %v", err, ErrIDZero)
	}
	if _, err := NewUserID(maxUUID); !errors.Is(err, ErrIDMax) {
		t.Errorf("all-ones UUID: got %v, want %v", err, ErrIDMax)
	}
}

func TestNewRandomIDs(t *testing.T) {
	u := NewRandomUserID()
	if u.Value() == uuid.Nil || u.Value() == maxUUID {
		t.Errorf("random user id hit a sentinel value: %s", u)
	}
	if NewRandomUserID() == u {
		t.Error("two random user ids collided")
	}

	g := NewRandomGroupID()
	if g.Value() == uuid.Nil {
		t.Error("random group id is nil")
	}
	e := NewRandomExpenseID()
	if e.Value() == uuid.Nil {
		t.Error("random expense id is nil")
	}
	ee := NewRandomExpenseEntryID()
	if ee.Value() == uuid.Nil {
		t.Error("random expense entry id is nil")
	}
}

func TestIDEquality(t *testing.T) {
	raw := uuid.Must(uuid.NewV7())
	a, err := NewUserID(raw)
	if err != nil {
		t.Fatalf("NewUserID: %v", err)
	}
	b, err := ParseUserID(raw.String())
	if err != nil {
		t.Fatalf("ParseUserID: %v", err)
	}
	if a != b {
		t.Errorf("ids built from the same UUID differ: %s vs %s", a, b)
	}
	// comparable: usable as a map key
	m := map[UserID]struct{}{a: {}}
	if _, ok := m[b]; !ok {
		t.Error("id not found under equal map key")
	}
}

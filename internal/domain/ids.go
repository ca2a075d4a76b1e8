package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Errors returned when constructing an id from an untrusted value.
var (
	ErrIDMalformed = errors.New("id must be a valid UUID")
	ErrIDZero      = errors.New("id cannot be the zero UUID")
	ErrIDMax       = errors.New("id cannot be the all-ones UUID")
)

// The zero and all-ones UUIDs are rejected everywhere: they collide with
// sentinel values and with accidental defaults leaking in from callers.
var maxUUID = uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

func checkID(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDZero
	}
	if id == maxUUID {
		return ErrIDMax
	}
	return nil
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, ErrIDMalformed
	}
	if err := checkID(id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// randomID returns a fresh UUIDv7 so that freshly minted ids sort by
// creation time.
func randomID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// UserID identifies a user.
type UserID struct{ val uuid.UUID }

func NewUserID(id uuid.UUID) (UserID, error) {
	if err := checkID(id); err != nil {
		return UserID{}, err
	}
	return UserID{val: id}, nil
}

func ParseUserID(s string) (UserID, error) {
	id, err := parseID(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID{val: id}, nil
}

// NewRandomUserID never fails.
func NewRandomUserID() UserID { return UserID{val: randomID()} }

func (id UserID) Value() uuid.UUID { return id.val }
func (id UserID) String() string   { return id.val.String() }

// GroupID identifies a group.
type GroupID struct{ val uuid.UUID }

func NewGroupID(id uuid.UUID) (GroupID, error) {
	if err := checkID(id); err != nil {
		return GroupID{}, err
	}
	return GroupID{val: id}, nil
}

func ParseGroupID(s string) (GroupID, error) {
	id, err := parseID(s)
	if err != nil {
		return GroupID{}, err
	}
	return GroupID{val: id}, nil
}

// NewRandomGroupID never fails.
func NewRandomGroupID() GroupID { return GroupID{val: randomID()} }

func (id GroupID) Value() uuid.UUID { return id.val }
func (id GroupID) String() string   { return id.val.String() }

// ExpenseID is the logical identity of an expense, shared by every
// ExpenseEntry version of it.
type ExpenseID struct{ val uuid.UUID }

func NewExpenseID(id uuid.UUID) (ExpenseID, error) {
	if err := checkID(id); err != nil {
		return ExpenseID{}, err
	}
	return ExpenseID{val: id}, nil
}

func ParseExpenseID(s string) (ExpenseID, error) {
	id, err := parseID(s)
	if err != nil {
		return ExpenseID{}, err
	}
	return ExpenseID{val: id}, nil
}

// NewRandomExpenseID never fails.
func NewRandomExpenseID() ExpenseID { return ExpenseID{val: randomID()} }

func (id ExpenseID) Value() uuid.UUID { return id.val }
func (id ExpenseID) String() string   { return id.val.String() }

// ExpenseEntryID identifies one version of an expense.
type ExpenseEntryID struct{ val uuid.UUID }

func NewExpenseEntryID(id uuid.UUID) (ExpenseEntryID, error) {
	if err := checkID(id); err != nil {
		return ExpenseEntryID{}, err
	}
	return ExpenseEntryID{val: id}, nil
}

func ParseExpenseEntryID(s string) (ExpenseEntryID, error) {
	id, err := parseID(s)
	if err != nil {
		return ExpenseEntryID{}, err
	}
	return ExpenseEntryID{val: id}, nil
}

// NewRandomExpenseEntryID never fails.
func NewRandomExpenseEntryID() ExpenseEntryID { return ExpenseEntryID{val: randomID()} }

func (id ExpenseEntryID) Value() uuid.UUID { return id.val }
func (id ExpenseEntryID) String() string   { return id.val.String() }

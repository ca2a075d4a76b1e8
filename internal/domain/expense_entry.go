package domain

import (
	"errors"
	"sort"
	"time"
)

var ErrNegativeTotal = errors.New("total cannot be negative")

// EntryStatus is the lifecycle status of an expense entry: either Active, or
// Inactive with the id of the entry that superseded it. Modeling the
// successor inside the status makes "inactive implies a successor exists"
// impossible to misstate.
type EntryStatus struct {
	inactive      bool
	overwrittenBy ExpenseEntryID
}

// ActiveStatus marks the entry as the current version of its expense.
func ActiveStatus() EntryStatus {
	return EntryStatus{}
}

// InactiveStatus marks the entry as superseded by the given entry.
func InactiveStatus(overwrittenBy ExpenseEntryID) EntryStatus {
	return EntryStatus{inactive: true, overwrittenBy: overwrittenBy}
}

func (s EntryStatus) IsActive() bool { return !s.inactive }

// OverwrittenBy returns the successor entry id; ok is false for active
// entries.
func (s EntryStatus) OverwrittenBy() (ExpenseEntryID, bool) {
	return s.overwrittenBy, s.inactive
}

// ExpenseEntry is one immutable versioned snapshot of an expense. Every
// correction creates a new entry with a fresh ID sharing the same ExpenseID;
// existing entries are never mutated. At any time exactly one entry per
// ExpenseID is Active; older versions are kept for history.
type ExpenseEntry struct {
	// ID identifies this specific version.
	ID ExpenseEntryID

	// ExpenseID is shared by all versions of the same logical expense.
	ExpenseID ExpenseID

	// GroupID is the group this expense belongs to.
	GroupID GroupID

	// PayerID is the user who actually paid.
	PayerID UserID

	// Participants are the users who owe a share. The payer is never in
	// this set.
	Participants []UserID

	Status EntryStatus

	// Total amount of the expense. Never negative.
	Total Money

	// AuthorID is the user who recorded this version.
	AuthorID UserID

	// OccurredAt is when the expense happened in the real world; it may
	// predate CreatedAt when the expense is entered later.
	OccurredAt time.Time

	// CreatedAt is when this version was recorded in the system.
	CreatedAt time.Time
}

// NewExpenseEntry validates the total and normalizes the participant set:
// duplicates and the payer are dropped, and the result is sorted by id for
// deterministic comparison.
func NewExpenseEntry(
	id ExpenseEntryID,
	expenseID ExpenseID,
	groupID GroupID,
	payerID UserID,
	participants []UserID,
	status EntryStatus,
	total Money,
	authorID UserID,
	occurredAt time.Time,
	createdAt time.Time,
) (ExpenseEntry, error) {
	if total.IsNegative() {
		return ExpenseEntry{}, ErrNegativeTotal
	}

	return ExpenseEntry{
		ID:           id,
		ExpenseID:    expenseID,
		GroupID:      groupID,
		PayerID:      payerID,
		Participants: normalizeParticipants(payerID, participants),
		Status:       status,
		Total:        total,
		AuthorID:     authorID,
		OccurredAt:   occurredAt,
		CreatedAt:    createdAt,
	}, nil
}

func normalizeParticipants(payerID UserID, participants []UserID) []UserID {
	seen := make(map[UserID]struct{}, len(participants))
	kept := make([]UserID, 0, len(participants))
	for _, p := range participants {
		if p == payerID {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		kept = append(kept, p)
	}
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].String() < kept[j].String()
	})
	return kept
}

// HasParticipant reports whether the user owes a share of this entry.
func (e *ExpenseEntry) HasParticipant(id UserID) bool {
	for _, p := range e.Participants {
		if p == id {
			return true
		}
	}
	return false
}

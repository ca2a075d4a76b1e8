package domain

import (
	"errors"
	"sort"
	"testing"
	"time"
)

func newTestEntry(t *testing.T, payer UserID, participants []UserID, total Money) ExpenseEntry {
	t.Helper()
	e, err := NewExpenseEntry(
		NewRandomExpenseEntryID(),
		NewRandomExpenseID(),
		NewRandomGroupID(),
		payer,
		participants,
		ActiveStatus(),
		total,
		payer,
		time.Now(),
		time.Now(),
	)
	if err != nil {
		t.Fatalf("NewExpenseEntry: %v", err)
	}
	return e
}

func TestNewExpenseEntry_RejectsNegativeTotal(t *testing.T) {
	_, err := NewExpenseEntry(
		NewRandomExpenseEntryID(),
		NewRandomExpenseID(),
		NewRandomGroupID(),
		NewRandomUserID(),
		nil,
		ActiveStatus(),
		MoneyFromCents(-1),
		NewRandomUserID(),
		time.Now(),
		time.Now(),
	)
	if !errors.Is(err, ErrNegativeTotal) {
		t.Errorf("got %v, want %v", err, ErrNegativeTotal)
	}
}

func TestNewExpenseEntry_ZeroTotalAllowed(t *testing.T) {
	payer := NewRandomUserID()
	e := newTestEntry(t, payer, nil, MoneyFromCents(0))
	if e.Total.Cents() != 0 {
		t.Errorf("total = %d, want 0", e.Total.Cents())
	}
}

func TestNewExpenseEntry_PayerNeverAParticipant(t *testing.T) {
	payer := NewRandomUserID()
	other := NewRandomUserID()

	e := newTestEntry(t, payer, []UserID{payer, other, other}, MoneyFromUnits(10))

	if len(e.Participants) != 1 {
		t.Fatalf("expected 1 participant, got %d", len(e.Participants))
	}
	if e.Participants[0] != other {
		t.Errorf("unexpected participant %s", e.Participants[0])
	}
	if e.HasParticipant(payer) {
		t.Error("payer must not owe themselves")
	}
	if !e.HasParticipant(other) {
		t.Error("participant lost during normalization")
	}
}

func TestNewExpenseEntry_ParticipantsSorted(t *testing.T) {
	payer := NewRandomUserID()
	participants := []UserID{NewRandomUserID(), NewRandomUserID(), NewRandomUserID()}

	e := newTestEntry(t, payer, participants, MoneyFromUnits(1))

	if !sort.SliceIsSorted(e.Participants, func(i, j int) bool {
		return e.Participants[i].String() < e.Participants[j].String()
	}) {
		t.Error("participants are not sorted")
	}
	if len(e.Participants) != 3 {
		t.Errorf("expected 3 participants, got %d", len(e.Participants))
	}
}

func TestEntryStatus(t *testing.T) {
	active := ActiveStatus()
	if !active.IsActive() {
		t.Error("ActiveStatus().IsActive() = false")
	}
	if _, ok := active.OverwrittenBy(); ok {
		t.Error("active entry reported a successor")
	}

	successor := NewRandomExpenseEntryID()
	inactive := InactiveStatus(successor)
	if inactive.IsActive() {
		t.Error("InactiveStatus().IsActive() = true")
	}
	got, ok := inactive.OverwrittenBy()
	if !ok {
		t.Fatal("inactive entry must expose its successor")
	}
	if got != successor {
		t.Errorf("successor = %s, want %s", got, successor)
	}
}

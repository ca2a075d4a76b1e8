package domain

import (
	"testing"
	"time"
)

func TestNewGroupNeverDuplicatesOwner(t *testing.T) {
	owner := NewRandomUserID()
	member := NewRandomUserID()

	g := NewGroup(NewRandomGroupID(), mustGroupname(t, "Roommates"), owner,
		[]UserID{member, owner, member}, time.Now())

	if len(g.Members) != 1 {
		t.Fatalf("expected 1 member after normalization, got %d", len(g.Members))
	}
	if g.Members[0] != member {
		t.Errorf("unexpected member %s", g.Members[0])
	}
	for _, m := range g.Members {
		if m == g.OwnerID {
			t.Error("owner leaked into member list")
		}
	}
}

func TestGroupPredicates(t *testing.T) {
	owner := NewRandomUserID()
	member := NewRandomUserID()
	stranger := NewRandomUserID()

	g := NewGroup(NewRandomGroupID(), mustGroupname(t, "Work Lunch"), owner,
		[]UserID{member}, time.Now())

	if !g.IsOwner(owner) {
		t.Error("IsOwner(owner) = false")
	}
	if g.IsOwner(member) {
		t.Error("IsOwner(member) = true")
	}
	if g.IsMember(owner) {
		t.Error("IsMember(owner) = true, owner must not be a member")
	}
	if !g.IsMember(member) {
		t.Error("IsMember(member) = false")
	}

	if !g.Contains(owner) || !g.Contains(member) {
		t.Error("Contains must cover both owner and members")
	}
	if g.Contains(stranger) {
		t.Error("Contains(stranger) = true")
	}
}

func mustGroupname(t *testing.T, s string) Groupname {
	t.Helper()
	g, err := ParseGroupname(s)
	if err != nil {
		t.Fatalf("ParseGroupname(%q): %v", s, err)
	}
	return g
}

package service

import (
	"context"
	"testing"

	"github.com/mverdier/coinsplit/internal/storage"
)

func listGroups(t *testing.T, store storage.Store, q GetGroupsForUserQuery) GroupsPage {
	t.Helper()
	var page GroupsPage
	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		var err error
		page, err = q.Handle(context.Background(), tx)
		return err
	})
	if err != nil {
		t.Fatalf("GetGroupsForUser: %v", err)
	}
	return page
}

func TestGetGroupsForUser(t *testing.T) {
	store := newTestStore(t)
	bob := createUser(t, store, "bob", "bob@example.com")
	alice := createUser(t, store, "alice", "alice@example.com")

	owned := createGroup(t, store, "Owned by Bob", bob)
	joined := createGroup(t, store, "Owned by Alice", alice)
	addMember(t, store, joined, bob, alice)
	createGroup(t, store, "Alice Only", alice)

	page := listGroups(t, store, GetGroupsForUserQuery{
		CurrentUser: bob,
		Pagination:  mustPagination(t, 1, 10),
	})
	if page.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", page.TotalItems)
	}
	if len(page.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(page.Groups))
	}

	byID := make(map[string]GroupSummary)
	for _, g := range page.Groups {
		byID[g.ID.String()] = g
	}
	got, ok := byID[owned.String()]
	if !ok {
		t.Fatalf("owned group missing from listing: %v", page.Groups)
	}
	if got.Owner.ID != bob || got.Owner.Name.Value() != "bob" {
		t.Errorf("owned group owner = %+v, want bob", got.Owner)
	}
	got, ok = byID[joined.String()]
	if !ok {
		t.Fatalf("joined group missing from listing: %v", page.Groups)
	}
	if got.Owner.ID != alice || got.Owner.Name.Value() != "alice" {
		t.Errorf("joined group owner = %+v, want alice", got.Owner)
	}
}

func TestGetGroupsForUser_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	bob := createUser(t, store, "bob", "bob@example.com")
	createGroup(t, store, "First", bob)
	createGroup(t, store, "Second", bob)
	createGroup(t, store, "Third", bob)

	page := listGroups(t, store, GetGroupsForUserQuery{
		CurrentUser: bob,
		Pagination:  mustPagination(t, 1, 10),
	})
	if len(page.Groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(page.Groups))
	}
	for i := 1; i < len(page.Groups); i++ {
		prev, cur := page.Groups[i-1], page.Groups[i]
		if cur.CreatedAt.After(prev.CreatedAt) {
			t.Errorf("groups out of order: %q (%v) before %q (%v)",
				prev.Name, prev.CreatedAt, cur.Name, cur.CreatedAt)
		}
	}
}

func TestGetGroupsForUser_Paginated(t *testing.T) {
	store := newTestStore(t)
	bob := createUser(t, store, "bob", "bob@example.com")
	createGroup(t, store, "Group A", bob)
	createGroup(t, store, "Group B", bob)
	createGroup(t, store, "Group C", bob)

	first := listGroups(t, store, GetGroupsForUserQuery{
		CurrentUser: bob,
		Pagination:  mustPagination(t, 1, 2),
	})
	if len(first.Groups) != 2 {
		t.Errorf("page 1: got %d groups, want 2", len(first.Groups))
	}
	// the total counts everything, not the window
	if first.TotalItems != 3 {
		t.Errorf("page 1: TotalItems = %d, want 3", first.TotalItems)
	}

	second := listGroups(t, store, GetGroupsForUserQuery{
		CurrentUser: bob,
		Pagination:  mustPagination(t, 2, 2),
	})
	if len(second.Groups) != 1 {
		t.Errorf("page 2: got %d groups, want 1", len(second.Groups))
	}
	if second.TotalItems != 3 {
		t.Errorf("page 2: TotalItems = %d, want 3", second.TotalItems)
	}
}

func TestGetGroupsForUser_NoGroups(t *testing.T) {
	store := newTestStore(t)
	bob := createUser(t, store, "bob", "bob@example.com")
	alice := createUser(t, store, "alice", "alice@example.com")
	createGroup(t, store, "Not Bobs", alice)

	page := listGroups(t, store, GetGroupsForUserQuery{
		CurrentUser: bob,
		Pagination:  mustPagination(t, 1, 10),
	})
	if len(page.Groups) != 0 {
		t.Errorf("got %d groups, want 0", len(page.Groups))
	}
	if page.TotalItems != 0 {
		t.Errorf("TotalItems = %d, want 0", page.TotalItems)
	}
}

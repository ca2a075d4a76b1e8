package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
	"github.com/mverdier/coinsplit/internal/storage/sqlite"
)

// Handlers are exercised against a real SQLite store: the precondition
// checks only mean something with the constraints of the persistence
// boundary underneath them.
func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustUsername(t *testing.T, s string) domain.Username {
	t.Helper()
	name, err := domain.ParseUsername(s)
	if err != nil {
		t.Fatalf("ParseUsername(%q): %v", s, err)
	}
	return name
}

func mustEmail(t *testing.T, s string) domain.EmailAddress {
	t.Helper()
	email, err := domain.ParseEmailAddress(s)
	if err != nil {
		t.Fatalf("ParseEmailAddress(%q): %v", s, err)
	}
	return email
}

func mustGroupname(t *testing.T, s string) domain.Groupname {
	t.Helper()
	name, err := domain.ParseGroupname(s)
	if err != nil {
		t.Fatalf("ParseGroupname(%q): %v", s, err)
	}
	return name
}

func mustPagination(t *testing.T, page, pageSize int) Pagination {
	t.Helper()
	p, err := NewPagination(page, pageSize)
	if err != nil {
		t.Fatalf("NewPagination(%d, %d): %v", page, pageSize, err)
	}
	return p
}

func createUser(t *testing.T, store storage.Store, name, email string) domain.UserID {
	t.Helper()
	cmd := CreateUserCommand{Email: mustEmail(t, email), Name: mustUsername(t, name)}
	var id domain.UserID
	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		var err error
		id, err = cmd.Handle(context.Background(), tx)
		return err
	})
	if err != nil {
		t.Fatalf("CreateUser(%q): %v", name, err)
	}
	return id
}

func createGroup(t *testing.T, store storage.Store, name string, owner domain.UserID) domain.GroupID {
	t.Helper()
	cmd := CreateEmptyGroupCommand{Name: mustGroupname(t, name), OwnerID: owner}
	var id domain.GroupID
	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		var err error
		id, err = cmd.Handle(context.Background(), tx)
		return err
	})
	if err != nil {
		t.Fatalf("CreateEmptyGroup(%q): %v", name, err)
	}
	return id
}

func addMember(t *testing.T, store storage.Store, group domain.GroupID, user, actor domain.UserID) {
	t.Helper()
	cmd := AddGroupMemberCommand{GroupID: group, UserIDToAdd: user, CurrentUserID: actor}
	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		return cmd.Handle(context.Background(), tx)
	})
	if err != nil {
		t.Fatalf("AddGroupMember: %v", err)
	}
}

func createExpense(t *testing.T, store storage.Store, cmd CreateExpenseCommand) (domain.ExpenseID, error) {
	t.Helper()
	var id domain.ExpenseID
	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		var err error
		id, err = cmd.Handle(context.Background(), tx)
		return err
	})
	return id, err
}

func getGroup(t *testing.T, store storage.Store, id domain.GroupID) *domain.Group {
	t.Helper()
	var group *domain.Group
	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		var err error
		group, err = tx.GroupByID(context.Background(), id)
		return err
	})
	if err != nil {
		t.Fatalf("GroupByID: %v", err)
	}
	return group
}

func activeEntries(t *testing.T, store storage.Store, group domain.GroupID) []domain.ExpenseEntry {
	t.Helper()
	var entries []domain.ExpenseEntry
	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		var err error
		entries, err = tx.ActiveExpenseEntriesForGroup(
			context.Background(), group, storage.Page{Limit: 100, Offset: 0})
		return err
	})
	if err != nil {
		t.Fatalf("ActiveExpenseEntriesForGroup: %v", err)
	}
	return entries
}

func someTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 2, 7, 20, 15, 0, 0, time.UTC)
}

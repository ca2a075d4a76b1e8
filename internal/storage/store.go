// Package storage defines the persistence boundary the ledger core reads
// from and writes to.
//
// Every command or query handler runs as one unit of work inside a single
// transaction: the caller obtains a Tx via Store.InTx, the handler performs
// its reads and writes against it, and the transaction commits when the
// callback returns nil or rolls back otherwise. The core takes no row locks;
// uniqueness and foreign-key constraints at this boundary are the backstop
// for concurrent writers, and a constraint violation surfaces as a plain
// database error rather than a domain conflict.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mverdier/coinsplit/internal/domain"
)

var (
	// ErrDatabase classifies any failure surfaced by the persistence
	// boundary, including constraint violations that were not pre-checked
	// by a handler.
	ErrDatabase = errors.New("database error")

	// ErrCorruptedData reports a stored value that no longer satisfies a
	// domain invariant (bad UUID, unknown role encoding, ...).
	ErrCorruptedData = errors.New("corrupted data")
)

// Page is a zero-based offset/limit window over an ordered result set.
type Page struct {
	Limit  int
	Offset int
}

// UserTx are the user operations available inside a transaction.
type UserTx interface {
	UserExists(ctx context.Context, id domain.UserID) (bool, error)
	// UserByID returns nil when no user has the id.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail returns nil when no user has the address.
	UserByEmail(ctx context.Context, email domain.EmailAddress) (*domain.User, error)
	EmailExists(ctx context.Context, email domain.EmailAddress) (bool, error)
	CreateUser(ctx context.Context, user domain.User) error
	// UsersByIDs resolves users in one batch; ids that do not resolve are
	// simply absent from the result.
	UsersByIDs(ctx context.Context, ids []domain.UserID) (map[domain.UserID]domain.User, error)
}

// GroupTx are the group operations available inside a transaction.
type GroupTx interface {
	// GroupNameExistsForOwner compares names exactly (case-sensitive).
	GroupNameExistsForOwner(ctx context.Context, name domain.Groupname, ownerID domain.UserID) (bool, error)
	// GroupByID returns nil when no group has the id.
	GroupByID(ctx context.Context, id domain.GroupID) (*domain.Group, error)
	CreateGroup(ctx context.Context, group domain.Group) error
	AddGroupMember(ctx context.Context, groupID domain.GroupID, userID domain.UserID) error
	// GroupsForUser lists groups where the user is owner or member,
	// ordered by creation time descending then id for stable pagination.
	GroupsForUser(ctx context.Context, userID domain.UserID, page Page) ([]domain.Group, error)
	// CountGroupsForUser counts the unpaginated owner-or-member predicate.
	CountGroupsForUser(ctx context.Context, userID domain.UserID) (int, error)
}

// ExpenseEntryTx are the expense-entry operations available inside a
// transaction.
type ExpenseEntryTx interface {
	CreateExpenseEntry(ctx context.Context, entry domain.ExpenseEntry) error
	// ExpenseEntryByID returns nil when no entry has the id.
	ExpenseEntryByID(ctx context.Context, id domain.ExpenseEntryID) (*domain.ExpenseEntry, error)
	ExpenseEntriesByExpenseID(ctx context.Context, id domain.ExpenseID) ([]domain.ExpenseEntry, error)
	// ActiveExpenseEntriesForGroup lists only Active entries, newest first.
	ActiveExpenseEntriesForGroup(ctx context.Context, groupID domain.GroupID, page Page) ([]domain.ExpenseEntry, error)
	CountActiveExpenseEntriesForGroup(ctx context.Context, groupID domain.GroupID) (int, error)
}

// Credential is a user's stored password hash. Sessions are stateless
// (bearer tokens), so this is the only auth state the store keeps.
type Credential struct {
	UserID       domain.UserID
	PasswordHash []byte
	CreatedAt    time.Time
}

// CredentialTx are the credential operations available inside a transaction.
type CredentialTx interface {
	CredentialExists(ctx context.Context, userID domain.UserID) (bool, error)
	CreateCredential(ctx context.Context, cred Credential) error
	// CredentialByUserID returns nil when the user has no credential.
	CredentialByUserID(ctx context.Context, userID domain.UserID) (*Credential, error)
}

// Tx is one open transaction against the store.
type Tx interface {
	UserTx
	GroupTx
	ExpenseEntryTx
	CredentialTx
}

// Store opens transactions. Implementations must roll back whenever fn
// returns an error and commit otherwise.
type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
	Close() error
}

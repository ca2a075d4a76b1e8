// Package domain holds the core entities and value types of coinsplit.
//
// Value types (ids, Money, Username, Groupname, Role, EmailAddress) validate
// on construction and are immutable afterwards. Entities (User, Group,
// ExpenseEntry) are built from value types and own their invariants:
//
//   - a Group's owner is never duplicated into its member list; a user is
//     "contained" in a group when they are the owner or a member
//   - an ExpenseEntry is an immutable versioned snapshot of an expense; its
//     participant set never includes the payer, and its total is never
//     negative
//
// Nothing in this package performs I/O. Persistence and orchestration live in
// internal/storage and internal/service.
package domain

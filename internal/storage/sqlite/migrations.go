package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// Invariants backed here rather than in handler code:
//   - users.email is unique
//   - (owner_id, name) is unique per group, with SQLite's default BINARY
//     collation so the comparison is exact-case
//   - expense_entries.overwritten_by is NULL exactly when the entry is
//     Active, and otherwise references the successor entry
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    role INTEGER NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS groups (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    owner_id TEXT NOT NULL REFERENCES users(id),
    created_at TEXT NOT NULL,
    UNIQUE (owner_id, name)
);

CREATE TABLE IF NOT EXISTS group_members (
    group_id TEXT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
    member_id TEXT NOT NULL REFERENCES users(id),
    PRIMARY KEY (group_id, member_id)
);

CREATE TABLE IF NOT EXISTS expense_entries (
    id TEXT PRIMARY KEY,
    expense_id TEXT NOT NULL,
    group_id TEXT NOT NULL REFERENCES groups(id),
    payer_id TEXT NOT NULL REFERENCES users(id),
    overwritten_by TEXT REFERENCES expense_entries(id),
    total INTEGER NOT NULL,
    author_id TEXT NOT NULL REFERENCES users(id),
    occurred_at TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS expense_entry_participants (
    entry_id TEXT NOT NULL REFERENCES expense_entries(id) ON DELETE CASCADE,
    participant_id TEXT NOT NULL REFERENCES users(id),
    PRIMARY KEY (entry_id, participant_id)
);

CREATE TABLE IF NOT EXISTS credentials (
    user_id TEXT PRIMARY KEY REFERENCES users(id),
    password_hash BLOB NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_groups_owner_id ON groups(owner_id);
CREATE INDEX IF NOT EXISTS idx_group_members_member_id ON group_members(member_id);
CREATE INDEX IF NOT EXISTS idx_expense_entries_group_id ON expense_entries(group_id);
CREATE INDEX IF NOT EXISTS idx_expense_entries_expense_id ON expense_entries(expense_id);
CREATE INDEX IF NOT EXISTS idx_entry_participants_entry_id ON expense_entry_participants(entry_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

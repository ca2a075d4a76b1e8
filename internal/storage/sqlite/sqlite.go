// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface using the pure Go driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new Store with the given database path. It creates the
// parent directories and runs migrations automatically.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Foreign keys back the core's referential invariants.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// InTx runs fn inside a single transaction, committing when fn returns nil
// and rolling back otherwise. Handler errors pass through unchanged.
func (s *Store) InTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	sqltx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", storage.ErrDatabase, err)
	}
	defer sqltx.Rollback()

	if err := fn(&tx{tx: sqltx}); err != nil {
		return err
	}

	if err := sqltx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %w", storage.ErrDatabase, err)
	}
	return nil
}

// tx implements storage.Tx over one open *sql.Tx.
type tx struct {
	tx *sql.Tx
}

var _ storage.Tx = (*tx)(nil)

func dbErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", storage.ErrDatabase, op, err)
}

func corrupted(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", storage.ErrCorruptedData, msg, err)
}

// Timestamps are stored as RFC 3339 text in UTC so that reads return values
// equal (time.Time.Equal) to what was written.
func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, corrupted("bad timestamp", err)
	}
	return t, nil
}

func decodeUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, corrupted("bad uuid", err)
	}
	return id, nil
}

func decodeUserID(s string) (domain.UserID, error) {
	raw, err := decodeUUID(s)
	if err != nil {
		return domain.UserID{}, err
	}
	id, err := domain.NewUserID(raw)
	if err != nil {
		return domain.UserID{}, corrupted("bad user id", err)
	}
	return id, nil
}

// repeatPlaceholder returns a string of ", ?" repeated n times. Used for
// building IN clauses with multiple placeholders.
func repeatPlaceholder(n int) string {
	if n <= 0 {
		return ""
	}
	result := ""
	for i := 0; i < n; i++ {
		result += ", ?"
	}
	return result
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

// CredentialExists reports whether the user already registered a password.
func (t *tx) CredentialExists(ctx context.Context, userID domain.UserID) (bool, error) {
	var one int
	err := t.tx.QueryRowContext(ctx,
		"SELECT 1 FROM credentials WHERE user_id = ?", userID.String(),
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, dbErr("failed to check credential existence", err)
	}
	return true, nil
}

// CreateCredential inserts the user's password hash.
func (t *tx) CreateCredential(ctx context.Context, cred storage.Credential) error {
	_, err := t.tx.ExecContext(ctx,
		"INSERT INTO credentials (user_id, password_hash, created_at) VALUES (?, ?, ?)",
		cred.UserID.String(),
		cred.PasswordHash,
		encodeTime(cred.CreatedAt),
	)
	if err != nil {
		return dbErr("failed to create credential", err)
	}
	return nil
}

// CredentialByUserID retrieves the stored hash, returning nil when absent.
func (t *tx) CredentialByUserID(ctx context.Context, userID domain.UserID) (*storage.Credential, error) {
	cred := storage.Credential{UserID: userID}
	var rawCreatedAt string
	err := t.tx.QueryRowContext(ctx,
		"SELECT password_hash, created_at FROM credentials WHERE user_id = ?",
		userID.String(),
	).Scan(&cred.PasswordHash, &rawCreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbErr("failed to get credential", err)
	}

	cred.CreatedAt, err = decodeTime(rawCreatedAt)
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

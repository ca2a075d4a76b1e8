package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/service"
	"github.com/mverdier/coinsplit/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// PasswordAuthenticator implements password-based authentication using
// bcrypt. Credentials live in their own table keyed by user id; the user
// record itself carries no secret.
type PasswordAuthenticator struct{}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator() *PasswordAuthenticator {
	return &PasswordAuthenticator{}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new account with a hashed password. The user row and
// the credential land in the same transaction, so a failed hash or insert
// leaves nothing behind.
func (a *PasswordAuthenticator) Register(ctx context.Context, tx storage.Tx, email domain.EmailAddress, name domain.Username, credential string) (domain.UserID, error) {
	if err := a.ValidateCredential(credential); err != nil {
		return domain.UserID{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserID{}, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := service.CreateUserCommand{Email: email, Name: name}.Handle(ctx, tx)
	if err != nil {
		return domain.UserID{}, err
	}

	cred := storage.Credential{
		UserID:       userID,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := tx.CreateCredential(ctx, cred); err != nil {
		return domain.UserID{}, err
	}

	return userID, nil
}

// Authenticate verifies the email and password, returning the user if
// valid. An unknown address and a wrong password are indistinguishable to
// the caller.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, tx storage.Tx, email domain.EmailAddress, credential string) (*domain.User, error) {
	user, err := tx.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	cred, err := tx.CredentialByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(cred.PasswordHash, []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

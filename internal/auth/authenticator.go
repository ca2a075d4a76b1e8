package auth

import (
	"context"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods
// (password, passkeys, OAuth, etc.) without changing the handler code.
// Both operations run inside the caller's transaction.
type Authenticator interface {
	// Register creates a new account with the given email, display name
	// and credential. The credential format depends on the implementation.
	Register(ctx context.Context, tx storage.Tx, email domain.EmailAddress, name domain.Username, credential string) (domain.UserID, error)

	// Authenticate verifies the credentials and returns the user if
	// successful.
	Authenticate(ctx context.Context, tx storage.Tx, email domain.EmailAddress, credential string) (*domain.User, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements.
	ValidateCredential(credential string) error
}

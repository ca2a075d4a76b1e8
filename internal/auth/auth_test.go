package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/service"
	"github.com/mverdier/coinsplit/internal/storage"
	"github.com/mverdier/coinsplit/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustEmail(t *testing.T, s string) domain.EmailAddress {
	t.Helper()
	email, err := domain.ParseEmailAddress(s)
	if err != nil {
		t.Fatalf("ParseEmailAddress(%q): %v", s, err)
	}
	return email
}

func mustUsername(t *testing.T, s string) domain.Username {
	t.Helper()
	name, err := domain.ParseUsername(s)
	if err != nil {
		t.Fatalf("ParseUsername(%q): %v", s, err)
	}
	return name
}

func register(t *testing.T, store storage.Store, email, name, password string) (domain.UserID, error) {
	t.Helper()
	authn := NewPasswordAuthenticator()
	var id domain.UserID
	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		var err error
		id, err = authn.Register(context.Background(), tx,
			mustEmail(t, email), mustUsername(t, name), password)
		return err
	})
	return id, err
}

func authenticate(t *testing.T, store storage.Store, email, password string) (*domain.User, error) {
	t.Helper()
	authn := NewPasswordAuthenticator()
	var user *domain.User
	err := store.InTx(context.Background(), func(tx storage.Tx) error {
		var err error
		user, err = authn.Authenticate(context.Background(), tx, mustEmail(t, email), password)
		return err
	})
	return user, err
}

func TestRegisterAndAuthenticate(t *testing.T) {
	store := newTestStore(t)

	id, err := register(t, store, "bob@example.com", "bob", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := authenticate(t, store, "bob@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.ID != id {
		t.Errorf("authenticated user id = %s, want %s", user.ID, id)
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	store := newTestStore(t)

	_, err := register(t, store, "bob@example.com", "bob", "short")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("error = %v, want %v", err, ErrWeakPassword)
	}
}

func TestRegister_EmailAlreadyTaken(t *testing.T) {
	store := newTestStore(t)
	if _, err := register(t, store, "bob@example.com", "bob", "hunter2hunter2"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := register(t, store, "bob@example.com", "robert", "different-pass")
	if !errors.Is(err, service.ErrEmailAlreadyTaken) {
		t.Fatalf("error = %v, want %v", err, service.ErrEmailAlreadyTaken)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	store := newTestStore(t)
	if _, err := register(t, store, "bob@example.com", "bob", "hunter2hunter2"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := authenticate(t, store, "bob@example.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	store := newTestStore(t)

	_, err := authenticate(t, store, "nobody@example.com", "hunter2hunter2")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)
	user := domain.NewUser(
		domain.NewRandomUserID(),
		mustUsername(t, "bob"),
		mustEmail(t, "bob@example.com"),
		domain.RoleUser,
		time.Now().UTC(),
	)

	token, err := manager.Generate(&user)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	got, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got != user.ID {
		t.Errorf("user id = %s, want %s", got, user.ID)
	}
}

func TestJWTValidate_WrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)
	other := NewJWTManager("another-secret-entirely!!!!!!!!!", time.Hour)
	user := domain.NewUser(
		domain.NewRandomUserID(),
		mustUsername(t, "bob"),
		mustEmail(t, "bob@example.com"),
		domain.RoleUser,
		time.Now().UTC(),
	)

	token, err := manager.Generate(&user)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestJWTValidate_Expired(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", -time.Minute)
	user := domain.NewUser(
		domain.NewRandomUserID(),
		mustUsername(t, "bob"),
		mustEmail(t, "bob@example.com"),
		domain.RoleUser,
		time.Now().UTC(),
	)

	token, err := manager.Generate(&user)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestJWTValidate_Garbage(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)
	if _, err := manager.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidToken)
	}
}

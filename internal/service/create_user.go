package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

var ErrEmailAlreadyTaken = errors.New("email already taken")

// CreateUserCommand registers a new account with the default role.
type CreateUserCommand struct {
	Email domain.EmailAddress
	Name  domain.Username
}

// Handle fails with ErrEmailAlreadyTaken when the address is registered;
// any other failure is a database error.
func (c CreateUserCommand) Handle(ctx context.Context, tx storage.Tx) (domain.UserID, error) {
	taken, err := tx.EmailExists(ctx, c.Email)
	if err != nil {
		return domain.UserID{}, err
	}
	if taken {
		return domain.UserID{}, ErrEmailAlreadyTaken
	}

	user := domain.NewUser(
		domain.NewRandomUserID(),
		c.Name,
		c.Email,
		domain.RoleUser,
		time.Now().UTC(),
	)
	if err := tx.CreateUser(ctx, user); err != nil {
		return domain.UserID{}, err
	}

	slog.Info("user created", "user_id", user.ID, "name", user.Name.Value())
	return user.ID, nil
}

package service

import (
	"context"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

// GetUserByIDQuery resolves a user by id.
type GetUserByIDQuery struct {
	ID domain.UserID
}

// Handle returns nil when no user has the id.
func (q GetUserByIDQuery) Handle(ctx context.Context, tx storage.Tx) (*domain.User, error) {
	return tx.UserByID(ctx, q.ID)
}

// GetUserByEmailQuery resolves a user by email address.
type GetUserByEmailQuery struct {
	Email domain.EmailAddress
}

// Handle returns nil when no user has the address.
func (q GetUserByEmailQuery) Handle(ctx context.Context, tx storage.Tx) (*domain.User, error) {
	return tx.UserByEmail(ctx, q.Email)
}

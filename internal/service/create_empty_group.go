package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

var (
	ErrOwnerNotFound    = errors.New("specified owner does not exist")
	ErrNameNotAvailable = errors.New("another group for owner with the same name already exists")
)

// CreateEmptyGroupCommand creates a group with no members besides the owner.
type CreateEmptyGroupCommand struct {
	Name    domain.Groupname
	OwnerID domain.UserID
}

// Handle checks, in order: the owner exists (ErrOwnerNotFound), then no
// group of theirs already has the name (ErrNameNotAvailable, exact-case
// comparison).
func (c CreateEmptyGroupCommand) Handle(ctx context.Context, tx storage.Tx) (domain.GroupID, error) {
	exists, err := tx.UserExists(ctx, c.OwnerID)
	if err != nil {
		return domain.GroupID{}, err
	}
	if !exists {
		return domain.GroupID{}, ErrOwnerNotFound
	}

	taken, err := tx.GroupNameExistsForOwner(ctx, c.Name, c.OwnerID)
	if err != nil {
		return domain.GroupID{}, err
	}
	if taken {
		return domain.GroupID{}, ErrNameNotAvailable
	}

	group := domain.NewGroup(
		domain.NewRandomGroupID(),
		c.Name,
		c.OwnerID,
		nil,
		time.Now().UTC(),
	)
	if err := tx.CreateGroup(ctx, group); err != nil {
		return domain.GroupID{}, err
	}

	slog.Info("group created", "group_id", group.ID, "owner_id", group.OwnerID)
	return group.ID, nil
}

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user to add not found")
	ErrNotOwner      = errors.New("only the group owner can add a member")
	ErrAlreadyMember = errors.New("user is already a member of this group")
)

// AddGroupMemberCommand adds a user to a group on behalf of an actor.
type AddGroupMemberCommand struct {
	GroupID       domain.GroupID
	UserIDToAdd   domain.UserID
	CurrentUserID domain.UserID
}

// Handle checks preconditions in a fixed order, existence before
// authorization before conflict: group exists (ErrGroupNotFound), target
// user exists (ErrUserNotFound), actor owns the group (ErrNotOwner), target
// is neither owner nor member (ErrAlreadyMember). Re-adding a member is an
// error, not a no-op.
func (c AddGroupMemberCommand) Handle(ctx context.Context, tx storage.Tx) error {
	group, err := tx.GroupByID(ctx, c.GroupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}

	exists, err := tx.UserExists(ctx, c.UserIDToAdd)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	if !group.IsOwner(c.CurrentUserID) {
		return ErrNotOwner
	}

	if group.Contains(c.UserIDToAdd) {
		return ErrAlreadyMember
	}

	if err := tx.AddGroupMember(ctx, c.GroupID, c.UserIDToAdd); err != nil {
		return err
	}

	slog.Info("group member added", "group_id", c.GroupID, "user_id", c.UserIDToAdd)
	return nil
}

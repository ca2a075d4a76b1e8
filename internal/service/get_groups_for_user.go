package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

// UserSummary carries the display identity of a user inside a projection.
type UserSummary struct {
	ID   domain.UserID
	Name domain.Username
}

// GroupSummary is the denormalized projection of one group in a listing.
type GroupSummary struct {
	ID        domain.GroupID
	Name      domain.Groupname
	Owner     UserSummary
	CreatedAt time.Time
}

// GroupsPage is one page of groups plus the unpaginated total.
type GroupsPage struct {
	Groups     []GroupSummary
	TotalItems int
}

// GetGroupsForUserQuery lists the groups where the caller is owner or
// member, newest first.
type GetGroupsForUserQuery struct {
	CurrentUser domain.UserID
	Pagination  Pagination
}

// Handle reads one page plus the total count, then resolves owner display
// names with a single batch lookup.
func (q GetGroupsForUserQuery) Handle(ctx context.Context, tx storage.Tx) (GroupsPage, error) {
	groups, err := tx.GroupsForUser(ctx, q.CurrentUser, q.Pagination.ToPage())
	if err != nil {
		return GroupsPage{}, err
	}

	total, err := tx.CountGroupsForUser(ctx, q.CurrentUser)
	if err != nil {
		return GroupsPage{}, err
	}

	if len(groups) == 0 {
		return GroupsPage{Groups: []GroupSummary{}, TotalItems: total}, nil
	}

	owners := make([]domain.UserID, 0, len(groups))
	seen := make(map[domain.UserID]struct{}, len(groups))
	for _, g := range groups {
		if _, ok := seen[g.OwnerID]; ok {
			continue
		}
		seen[g.OwnerID] = struct{}{}
		owners = append(owners, g.OwnerID)
	}

	users, err := tx.UsersByIDs(ctx, owners)
	if err != nil {
		return GroupsPage{}, err
	}

	summaries := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		owner, ok := users[g.OwnerID]
		if !ok {
			return GroupsPage{}, fmt.Errorf("%w: missing owner %s for group %s",
				storage.ErrCorruptedData, g.OwnerID, g.ID)
		}
		summaries = append(summaries, GroupSummary{
			ID:        g.ID,
			Name:      g.Name,
			Owner:     UserSummary{ID: owner.ID, Name: owner.Name},
			CreatedAt: g.CreatedAt,
		})
	}

	return GroupsPage{Groups: summaries, TotalItems: total}, nil
}

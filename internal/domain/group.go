package domain

import "time"

// Group is an expense-sharing group. The owner is never duplicated into
// Members; a user belongs to the group when they are the owner or a member.
type Group struct {
	ID        GroupID
	Name      Groupname
	OwnerID   UserID
	Members   []UserID
	CreatedAt time.Time
}

// NewGroup assembles a group, dropping the owner from the member list if a
// caller slipped it in.
func NewGroup(id GroupID, name Groupname, ownerID UserID, members []UserID, createdAt time.Time) Group {
	kept := make([]UserID, 0, len(members))
	seen := make(map[UserID]struct{}, len(members))
	for _, m := range members {
		if m == ownerID {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		kept = append(kept, m)
	}
	return Group{
		ID:        id,
		Name:      name,
		OwnerID:   ownerID,
		Members:   kept,
		CreatedAt: createdAt,
	}
}

// IsOwner reports whether the user owns the group.
func (g *Group) IsOwner(id UserID) bool {
	return g.OwnerID == id
}

// IsMember reports whether the user is a plain member (owner excluded).
func (g *Group) IsMember(id UserID) bool {
	for _, m := range g.Members {
		if m == id {
			return true
		}
	}
	return false
}

// Contains reports whether the user is the owner or a member.
func (g *Group) Contains(id UserID) bool {
	return g.IsOwner(id) || g.IsMember(id)
}

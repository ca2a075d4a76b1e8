package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

// GroupNameExistsForOwner reports whether the owner already has a group with
// this exact name. The comparison is case-sensitive (BINARY collation).
func (t *tx) GroupNameExistsForOwner(ctx context.Context, name domain.Groupname, ownerID domain.UserID) (bool, error) {
	var one int
	err := t.tx.QueryRowContext(ctx,
		"SELECT 1 FROM groups WHERE owner_id = ? AND name = ?",
		ownerID.String(), name.Value(),
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, dbErr("failed to check group name", err)
	}
	return true, nil
}

// GroupByID retrieves a group and its member list, returning nil when absent.
func (t *tx) GroupByID(ctx context.Context, id domain.GroupID) (*domain.Group, error) {
	var rawName, rawOwner, rawCreatedAt string
	err := t.tx.QueryRowContext(ctx,
		"SELECT name, owner_id, created_at FROM groups WHERE id = ?", id.String(),
	).Scan(&rawName, &rawOwner, &rawCreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbErr("failed to get group", err)
	}

	group, err := t.buildGroup(ctx, id, rawName, rawOwner, rawCreatedAt)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (t *tx) buildGroup(ctx context.Context, id domain.GroupID, rawName, rawOwner, rawCreatedAt string) (domain.Group, error) {
	name, err := domain.ParseGroupname(rawName)
	if err != nil {
		return domain.Group{}, corrupted("bad group name", err)
	}
	ownerID, err := decodeUserID(rawOwner)
	if err != nil {
		return domain.Group{}, err
	}
	createdAt, err := decodeTime(rawCreatedAt)
	if err != nil {
		return domain.Group{}, err
	}
	members, err := t.groupMembers(ctx, id)
	if err != nil {
		return domain.Group{}, err
	}
	return domain.NewGroup(id, name, ownerID, members, createdAt), nil
}

func (t *tx) groupMembers(ctx context.Context, id domain.GroupID) ([]domain.UserID, error) {
	rows, err := t.tx.QueryContext(ctx,
		"SELECT member_id FROM group_members WHERE group_id = ? ORDER BY member_id",
		id.String(),
	)
	if err != nil {
		return nil, dbErr("failed to get group members", err)
	}
	defer rows.Close()

	var members []domain.UserID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, dbErr("failed to scan group member", err)
		}
		member, err := decodeUserID(raw)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("failed to iterate group members", err)
	}
	return members, nil
}

// CreateGroup inserts a group and its member rows.
func (t *tx) CreateGroup(ctx context.Context, group domain.Group) error {
	_, err := t.tx.ExecContext(ctx,
		"INSERT INTO groups (id, name, owner_id, created_at) VALUES (?, ?, ?, ?)",
		group.ID.String(),
		group.Name.Value(),
		group.OwnerID.String(),
		encodeTime(group.CreatedAt),
	)
	if err != nil {
		return dbErr("failed to create group", err)
	}

	for _, member := range group.Members {
		if err := t.AddGroupMember(ctx, group.ID, member); err != nil {
			return err
		}
	}
	return nil
}

// AddGroupMember inserts one membership row. Re-adding an existing member
// violates the primary key and surfaces as a database error.
func (t *tx) AddGroupMember(ctx context.Context, groupID domain.GroupID, userID domain.UserID) error {
	_, err := t.tx.ExecContext(ctx,
		"INSERT INTO group_members (group_id, member_id) VALUES (?, ?)",
		groupID.String(), userID.String(),
	)
	if err != nil {
		return dbErr("failed to add group member", err)
	}
	return nil
}

const groupsForUserWhere = `
	g.owner_id = ?
	OR EXISTS (SELECT 1 FROM group_members gm WHERE gm.group_id = g.id AND gm.member_id = ?)`

// GroupsForUser lists groups where the user is owner or member, newest
// first with the id as tie-break for stable pagination.
func (t *tx) GroupsForUser(ctx context.Context, userID domain.UserID, page storage.Page) ([]domain.Group, error) {
	rows, err := t.tx.QueryContext(ctx,
		`SELECT g.id, g.name, g.owner_id, g.created_at
		FROM groups g
		WHERE `+groupsForUserWhere+`
		ORDER BY g.created_at DESC, g.id
		LIMIT ? OFFSET ?`,
		userID.String(), userID.String(), page.Limit, page.Offset,
	)
	if err != nil {
		return nil, dbErr("failed to list groups for user", err)
	}
	defer rows.Close()

	type groupRow struct {
		id, name, owner, createdAt string
	}
	var raw []groupRow
	for rows.Next() {
		var r groupRow
		if err := rows.Scan(&r.id, &r.name, &r.owner, &r.createdAt); err != nil {
			return nil, dbErr("failed to scan group", err)
		}
		raw = append(raw, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("failed to iterate groups", err)
	}

	groups := make([]domain.Group, 0, len(raw))
	for _, r := range raw {
		rawID, err := decodeUUID(r.id)
		if err != nil {
			return nil, err
		}
		id, err := domain.NewGroupID(rawID)
		if err != nil {
			return nil, corrupted("bad group id", err)
		}
		group, err := t.buildGroup(ctx, id, r.name, r.owner, r.createdAt)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// CountGroupsForUser counts the unpaginated owner-or-member predicate.
func (t *tx) CountGroupsForUser(ctx context.Context, userID domain.UserID) (int, error) {
	var count int
	err := t.tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM groups g WHERE "+groupsForUserWhere,
		userID.String(), userID.String(),
	).Scan(&count)
	if err != nil {
		return 0, dbErr("failed to count groups for user", err)
	}
	return count, nil
}

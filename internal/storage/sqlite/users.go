package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

// Roles are stored with gaps between the known values so a future role can
// slot in without renumbering existing rows. The domain enum stays closed;
// the gaps live only here.
func encodeRole(r domain.Role) int {
	switch r {
	case domain.RoleModerator:
		return 20
	case domain.RoleAdmin:
		return 30
	default:
		return 10
	}
}

func decodeRole(v int) (domain.Role, error) {
	switch v {
	case 10:
		return domain.RoleUser, nil
	case 20:
		return domain.RoleModerator, nil
	case 30:
		return domain.RoleAdmin, nil
	default:
		return domain.RoleUser, fmt.Errorf("%w: unknown role: %d", storage.ErrCorruptedData, v)
	}
}

type userRow struct {
	id        string
	name      string
	email     string
	role      int
	createdAt string
}

func (r userRow) toDomain() (domain.User, error) {
	id, err := decodeUserID(r.id)
	if err != nil {
		return domain.User{}, err
	}
	name, err := domain.ParseUsername(r.name)
	if err != nil {
		return domain.User{}, corrupted("bad username", err)
	}
	email, err := domain.ParseEmailAddress(r.email)
	if err != nil {
		return domain.User{}, corrupted("bad email", err)
	}
	role, err := decodeRole(r.role)
	if err != nil {
		return domain.User{}, err
	}
	createdAt, err := decodeTime(r.createdAt)
	if err != nil {
		return domain.User{}, err
	}
	return domain.NewUser(id, name, email, role, createdAt), nil
}

// UserExists reports whether a user row has the id.
func (t *tx) UserExists(ctx context.Context, id domain.UserID) (bool, error) {
	var one int
	err := t.tx.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE id = ?", id.String(),
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, dbErr("failed to check user existence", err)
	}
	return true, nil
}

// UserByID retrieves a user by id, returning nil when absent.
func (t *tx) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return t.userWhere(ctx, "id = ?", id.String())
}

// UserByEmail retrieves a user by email, returning nil when absent.
func (t *tx) UserByEmail(ctx context.Context, email domain.EmailAddress) (*domain.User, error) {
	return t.userWhere(ctx, "email = ?", email.Value())
}

func (t *tx) userWhere(ctx context.Context, where string, arg any) (*domain.User, error) {
	var row userRow
	err := t.tx.QueryRowContext(ctx,
		"SELECT id, name, email, role, created_at FROM users WHERE "+where, arg,
	).Scan(&row.id, &row.name, &row.email, &row.role, &row.createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbErr("failed to get user", err)
	}

	user, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists reports whether the address is already registered.
func (t *tx) EmailExists(ctx context.Context, email domain.EmailAddress) (bool, error) {
	var one int
	err := t.tx.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE email = ?", email.Value(),
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, dbErr("failed to check email existence", err)
	}
	return true, nil
}

// CreateUser inserts a new user.
func (t *tx) CreateUser(ctx context.Context, user domain.User) error {
	_, err := t.tx.ExecContext(ctx,
		"INSERT INTO users (id, name, email, role, created_at) VALUES (?, ?, ?, ?, ?)",
		user.ID.String(),
		user.Name.Value(),
		user.Email.Value(),
		encodeRole(user.Role),
		encodeTime(user.CreatedAt),
	)
	if err != nil {
		return dbErr("failed to create user", err)
	}
	return nil
}

// UsersByIDs retrieves users in one batch. Ids without a row are omitted
// from the result.
func (t *tx) UsersByIDs(ctx context.Context, ids []domain.UserID) (map[domain.UserID]domain.User, error) {
	users := make(map[domain.UserID]domain.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	query := "SELECT id, name, email, role, created_at FROM users WHERE id IN (?" +
		repeatPlaceholder(len(ids)-1) + ")"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id.String()
	}

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbErr("failed to get users by ids", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row userRow
		if err := rows.Scan(&row.id, &row.name, &row.email, &row.role, &row.createdAt); err != nil {
			return nil, dbErr("failed to scan user", err)
		}
		user, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		users[user.ID] = user
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("failed to iterate users", err)
	}

	return users, nil
}

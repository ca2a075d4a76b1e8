package domain

import "time"

// User is a registered account. Users are immutable once created; the
// ledger has no update command for them.
type User struct {
	ID        UserID
	Name      Username
	Email     EmailAddress
	Role      Role
	CreatedAt time.Time
}

// NewUser assembles a user from already-validated value types.
func NewUser(id UserID, name Username, email EmailAddress, role Role, createdAt time.Time) User {
	return User{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: createdAt,
	}
}

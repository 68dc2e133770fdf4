package users

import (
	"context"
)

// Repository is the persistence contract for user accounts. Username
// uniqueness is enforced by the storage layer; Create reports a violation
// as common.ErrDuplicateUser.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

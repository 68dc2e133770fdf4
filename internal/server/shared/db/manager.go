// Package db wires the SQL connection, repositories and schema migrations
// together behind a single manager.
package db

import (
	"context"

	"github.com/dmitrijs2005/loginkeeper/internal/server/users"
)

type RepositoryManager interface {
	Users() users.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}

// internal/repository/user_repo.go
package repository

import (
	"context"

	"nilebank/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user. Returns util.ErrDuplicateIdentity when the
	// national id is already registered.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByNameAndRole retrieves a user by name restricted to a role.
	GetUserByNameAndRole(ctx context.Context, q DBExecutor, name string, role domain.Role) (*domain.User, error)
	// UpdatePasswordHash overwrites the stored password hash.
	UpdatePasswordHash(ctx context.Context, q DBExecutor, id int64, hash string) error
	// SetLocked toggles the is_locked flag. Idempotent.
	SetLocked(ctx context.Context, q DBExecutor, id int64, locked bool) error
	// DeleteUser removes the user row.
	DeleteUser(ctx context.Context, q DBExecutor, id int64) error
	// ListCustomers returns all customers in insertion order.
	ListCustomers(ctx context.Context, q DBExecutor) ([]domain.User, error)
}

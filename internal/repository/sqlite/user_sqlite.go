// internal/repository/sqlite/user_sqlite.go
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"nilebank/internal/domain"
	"nilebank/internal/repository"
	"nilebank/internal/util"
)

// UserRepository implements repository.UserRepository for SQLite.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{}
}

type userRow struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	NationalID   string `db:"national_id"`
	PhoneNumber  string `db:"phone_number"`
	PasswordHash string `db:"password_hash"`
	IsLocked     bool   `db:"is_locked"`
	Role         string `db:"role"`
	CreatedAt    int64  `db:"created_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Name:         r.Name,
		NationalID:   r.NationalID,
		PhoneNumber:  r.PhoneNumber,
		PasswordHash: r.PasswordHash,
		IsLocked:     r.IsLocked,
		Role:         domain.Role(r.Role),
		CreatedAt:    fromMillis(r.CreatedAt),
	}
}

// CreateUser inserts a new user using the provided DBExecutor.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (name, national_id, phone_number, password_hash, is_locked, role, created_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := q.ExecContext(ctx, query,
		user.Name, user.NationalID, user.PhoneNumber, user.PasswordHash,
		user.IsLocked, string(user.Role), toMillis(user.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateIdentity
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new user id: %w", err)
	}
	user.ID = id
	return nil
}

// GetUserByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var row userRow
	query := `SELECT id, name, national_id, phone_number, password_hash, is_locked, role, created_at
              FROM users WHERE id = ?`
	err := q.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return row.toDomain(), nil
}

// GetUserByNameAndRole retrieves a user by name restricted to a role.
func (r *UserRepository) GetUserByNameAndRole(ctx context.Context, q repository.DBExecutor, name string, role domain.Role) (*domain.User, error) {
	var row userRow
	query := `SELECT id, name, national_id, phone_number, password_hash, is_locked, role, created_at
              FROM users WHERE name = ? AND role = ?`
	err := q.GetContext(ctx, &row, query, name, string(role))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %q with role %s: %w", name, role, err)
	}
	return row.toDomain(), nil
}

// UpdatePasswordHash overwrites the stored password hash.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, q repository.DBExecutor, id int64, hash string) error {
	result, err := q.ExecContext(ctx, `UPDATE users SET password_hash = ? WHERE id = ?`, hash, id)
	if err != nil {
		return fmt.Errorf("failed to update password for user %d: %w", id, err)
	}
	return requireRowAffected(result, id)
}

// SetLocked toggles the is_locked flag.
func (r *UserRepository) SetLocked(ctx context.Context, q repository.DBExecutor, id int64, locked bool) error {
	result, err := q.ExecContext(ctx, `UPDATE users SET is_locked = ? WHERE id = ?`, locked, id)
	if err != nil {
		return fmt.Errorf("failed to set lock state for user %d: %w", id, err)
	}
	return requireRowAffected(result, id)
}

// DeleteUser removes the user row.
func (r *UserRepository) DeleteUser(ctx context.Context, q repository.DBExecutor, id int64) error {
	result, err := q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return requireRowAffected(result, id)
}

// ListCustomers returns all customers in insertion order.
func (r *UserRepository) ListCustomers(ctx context.Context, q repository.DBExecutor) ([]domain.User, error) {
	rows := []userRow{}
	query := `SELECT id, name, national_id, phone_number, password_hash, is_locked, role, created_at
              FROM users WHERE role = ? ORDER BY id`
	if err := q.SelectContext(ctx, &rows, query, string(domain.RoleCustomer)); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = *row.toDomain()
	}
	return users, nil
}

func requireRowAffected(result sql.Result, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for user %d: %w", id, err)
	}
	if affected == 0 {
		return util.ErrUserNotFound
	}
	return nil
}

// internal/service/directory.go
package service

import (
	"context"
	"errors"
	"fmt"

	"nilebank/internal/audit"
	"nilebank/internal/auth"
	"nilebank/internal/domain"
	"nilebank/internal/repository"
	"nilebank/internal/util"
	"nilebank/pkg/db"

	"github.com/jmoiron/sqlx"
)

// DirectoryService owns user and account lifecycle and the admin-facing
// directory queries.
type DirectoryService interface {
	RegisterCustomer(ctx context.Context, name, nationalID, phone, password string) (*domain.User, error)
	RegisterAdmin(ctx context.Context, name, nationalID, phone, password string) (*domain.User, error)
	Authenticate(ctx context.Context, name, password string, role domain.Role) (*domain.User, error)
	ResetPassword(ctx context.Context, userID int64, newPassword string) error
	Lock(ctx context.Context, userID int64) error
	Unlock(ctx context.Context, userID int64) error
	DeleteUser(ctx context.Context, userID int64) error
	ListCustomers(ctx context.Context) ([]domain.User, error)
}

// directoryService implements the DirectoryService interface.
type directoryService struct {
	db       *sqlx.DB
	users    repository.UserRepository
	accounts repository.AccountRepository
	hasher   auth.PasswordHasher
	trail    *audit.Trail
}

// NewDirectoryService creates a new instance of DirectoryService.
func NewDirectoryService(database *sqlx.DB, users repository.UserRepository, accounts repository.AccountRepository, hasher auth.PasswordHasher, trail *audit.Trail) DirectoryService {
	return &directoryService{
		db:       database,
		users:    users,
		accounts: accounts,
		hasher:   hasher,
		trail:    trail,
	}
}

// RegisterCustomer creates a customer and their zero-balance account in one
// transaction: both rows commit together or neither does.
func (s *directoryService) RegisterCustomer(ctx context.Context, name, nationalID, phone, password string) (*domain.User, error) {
	if !auth.StrongPassword(password) {
		return nil, util.ErrWeakCredential
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register customer: failed to hash password: %w", err)
	}

	tx, err := db.BeginTx(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("register customer: %w", err)
	}
	defer db.RollbackTx(tx)

	user := domain.NewUser(name, nationalID, phone, hash, domain.RoleCustomer)
	if err := s.users.CreateUser(ctx, tx, user); err != nil {
		if errors.Is(err, util.ErrDuplicateIdentity) {
			return nil, util.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("register customer: %w", err)
	}

	account := domain.NewAccount(user.ID)
	if err := s.accounts.CreateAccount(ctx, tx, account); err != nil {
		return nil, fmt.Errorf("register customer: %w", err)
	}

	if err := db.CommitTx(tx); err != nil {
		return nil, fmt.Errorf("register customer: %w", err)
	}
	return user, nil
}

// RegisterAdmin creates an admin user. Admins carry no account.
func (s *directoryService) RegisterAdmin(ctx context.Context, name, nationalID, phone, password string) (*domain.User, error) {
	if !auth.StrongPassword(password) {
		return nil, util.ErrWeakCredential
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register admin: failed to hash password: %w", err)
	}

	user := domain.NewUser(name, nationalID, phone, hash, domain.RoleAdmin)
	if err := s.users.CreateUser(ctx, s.db, user); err != nil {
		if errors.Is(err, util.ErrDuplicateIdentity) {
			return nil, util.ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("register admin: %w", err)
	}
	return user, nil
}

// Authenticate looks a user up by name and role and verifies the password.
// The is_locked flag is not checked at sign-in; locking only marks the
// account in the directory.
func (s *directoryService) Authenticate(ctx context.Context, name, password string, role domain.Role) (*domain.User, error) {
	user, err := s.users.GetUserByNameAndRole(ctx, s.db, name, role)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, util.ErrInvalidCredentials
	}
	return user, nil
}

// ResetPassword overwrites the stored hash after checking the policy.
func (s *directoryService) ResetPassword(ctx context.Context, userID int64, newPassword string) error {
	if !auth.StrongPassword(newPassword) {
		return util.ErrWeakCredential
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("reset password: failed to hash password: %w", err)
	}
	if err := s.users.UpdatePasswordHash(ctx, s.db, userID, hash); err != nil {
		s.record(userID, "reset_password", "failed")
		return fmt.Errorf("reset password: %w", err)
	}
	s.record(userID, "reset_password", "success")
	return nil
}

// Lock marks the user as locked. Idempotent.
func (s *directoryService) Lock(ctx context.Context, userID int64) error {
	if err := s.users.SetLocked(ctx, s.db, userID, true); err != nil {
		s.record(userID, "lock", "failed")
		return fmt.Errorf("lock: %w", err)
	}
	s.record(userID, "lock", "success")
	return nil
}

// Unlock clears the locked flag. Idempotent.
func (s *directoryService) Unlock(ctx context.Context, userID int64) error {
	if err := s.users.SetLocked(ctx, s.db, userID, false); err != nil {
		s.record(userID, "unlock", "failed")
		return fmt.Errorf("unlock: %w", err)
	}
	s.record(userID, "unlock", "success")
	return nil
}

// DeleteUser removes the account (if any) then the user, in one transaction.
// Transaction history is left in place.
func (s *directoryService) DeleteUser(ctx context.Context, userID int64) error {
	tx, err := db.BeginTx(ctx, s.db)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	defer db.RollbackTx(tx)

	if err := s.accounts.DeleteAccountByUserID(ctx, tx, userID); err != nil {
		s.record(userID, "delete_user", "failed")
		return fmt.Errorf("delete user: %w", err)
	}
	if err := s.users.DeleteUser(ctx, tx, userID); err != nil {
		s.record(userID, "delete_user", "failed")
		return fmt.Errorf("delete user: %w", err)
	}
	if err := db.CommitTx(tx); err != nil {
		s.record(userID, "delete_user", "failed")
		return fmt.Errorf("delete user: %w", err)
	}
	s.record(userID, "delete_user", "success")
	return nil
}

// ListCustomers returns all customers in insertion order.
func (s *directoryService) ListCustomers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListCustomers(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return users, nil
}

// record writes to the audit trail. Trail failures never fail the operation.
func (s *directoryService) record(userID int64, action, status string) {
	if s.trail == nil {
		return
	}
	_ = s.trail.Record(userID, action, status)
}

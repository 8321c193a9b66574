// internal/repository/account_repo.go
package repository

import (
	"context"

	"nilebank/internal/domain"

	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for account data operations.
type AccountRepository interface {
	// CreateAccount adds a new account with zero balances.
	CreateAccount(ctx context.Context, q DBExecutor, account *domain.Account) error
	// GetAccountByUserID retrieves the account owned by userID.
	GetAccountByUserID(ctx context.Context, q DBExecutor, userID int64) (*domain.Account, error)
	// UpdateBalances writes both pool balances. Balances are stored as decimal
	// strings, so the new values are computed in the service inside the same
	// transaction rather than as SQL arithmetic.
	UpdateBalances(ctx context.Context, q DBExecutor, userID int64, credit, wallet decimal.Decimal) error
	// DeleteAccountByUserID removes the account owned by userID, if any.
	DeleteAccountByUserID(ctx context.Context, q DBExecutor, userID int64) error
}

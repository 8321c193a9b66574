// internal/repository/sqlite/account_sqlite.go
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nilebank/internal/domain"
	"nilebank/internal/repository"
	"nilebank/internal/util"

	"github.com/shopspring/decimal"
)

// AccountRepository implements repository.AccountRepository for SQLite.
type AccountRepository struct{}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository() repository.AccountRepository {
	return &AccountRepository{}
}

type accountRow struct {
	ID            int64           `db:"id"`
	UserID        int64           `db:"user_id"`
	Credit        decimal.Decimal `db:"credit"`
	WalletBalance decimal.Decimal `db:"wallet_balance"`
	UpdatedAt     int64           `db:"updated_at"`
}

func (r accountRow) toDomain() *domain.Account {
	return &domain.Account{
		ID:            r.ID,
		UserID:        r.UserID,
		Credit:        r.Credit,
		WalletBalance: r.WalletBalance,
		UpdatedAt:     fromMillis(r.UpdatedAt),
	}
}

// CreateAccount inserts a new account using the provided DBExecutor.
func (r *AccountRepository) CreateAccount(ctx context.Context, q repository.DBExecutor, account *domain.Account) error {
	query := `INSERT INTO accounts (user_id, credit, wallet_balance, updated_at)
              VALUES (?, ?, ?, ?)`
	result, err := q.ExecContext(ctx, query,
		account.UserID, account.Credit.String(), account.WalletBalance.String(), toMillis(account.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create account for user %d: %w", account.UserID, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new account id: %w", err)
	}
	account.ID = id
	return nil
}

// GetAccountByUserID retrieves the account owned by userID.
func (r *AccountRepository) GetAccountByUserID(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Account, error) {
	var row accountRow
	query := `SELECT id, user_id, credit, wallet_balance, updated_at FROM accounts WHERE user_id = ?`
	err := q.GetContext(ctx, &row, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account for user %d: %w", userID, err)
	}
	return row.toDomain(), nil
}

// UpdateBalances writes both pool balances for the account owned by userID.
func (r *AccountRepository) UpdateBalances(ctx context.Context, q repository.DBExecutor, userID int64, credit, wallet decimal.Decimal) error {
	query := `UPDATE accounts SET credit = ?, wallet_balance = ?, updated_at = ? WHERE user_id = ?`
	result, err := q.ExecContext(ctx, query, credit.String(), wallet.String(), toMillis(time.Now()), userID)
	if err != nil {
		return fmt.Errorf("failed to update balances for user %d: %w", userID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for user %d: %w", userID, err)
	}
	if affected == 0 {
		return util.ErrAccountNotFound
	}
	return nil
}

// DeleteAccountByUserID removes the account owned by userID. Deleting a user
// without an account (an admin) is not an error.
func (r *AccountRepository) DeleteAccountByUserID(ctx context.Context, q repository.DBExecutor, userID int64) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM accounts WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to delete account for user %d: %w", userID, err)
	}
	return nil
}

// internal/domain/account.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Pool names one of an account's two balance buckets.
type Pool string

const (
	PoolCredit Pool = "credit"
	PoolWallet Pool = "wallet"
)

// Valid reports whether the pool is one of the known pools.
func (p Pool) Valid() bool {
	return p == PoolCredit || p == PoolWallet
}

// Account holds a customer's two balance pools. Both balances are
// always >= 0; mutation goes through the ledger service only.
type Account struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	Credit        decimal.Decimal `json:"credit"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewAccount creates an Account for userID with both pools at zero.
func NewAccount(userID int64) *Account {
	return &Account{
		UserID:        userID,
		Credit:        decimal.Zero,
		WalletBalance: decimal.Zero,
		UpdatedAt:     time.Now().UTC(),
	}
}

// Balance returns the current balance of the given pool.
func (a *Account) Balance(pool Pool) decimal.Decimal {
	if pool == PoolCredit {
		return a.Credit
	}
	return a.WalletBalance
}

// SetBalance replaces the balance of the given pool.
func (a *Account) SetBalance(pool Pool, value decimal.Decimal) {
	if pool == PoolCredit {
		a.Credit = value
		return
	}
	a.WalletBalance = value
}

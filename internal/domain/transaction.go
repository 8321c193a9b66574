// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// TransactionType defines the type of a monetary event.
type TransactionType string

const (
	TransactionTypeCreditDeposit  TransactionType = "credit_deposit"
	TransactionTypeWalletDeposit  TransactionType = "wallet_deposit"
	TransactionTypeCreditWithdraw TransactionType = "credit_withdraw"
	TransactionTypeWalletWithdraw TransactionType = "wallet_withdraw"
	TransactionTypeWalletToCredit TransactionType = "wallet_to_credit"
	TransactionTypeCreditToWallet TransactionType = "credit_to_wallet"
)

// DepositType returns the transaction type for a deposit into pool.
func DepositType(pool Pool) TransactionType {
	if pool == PoolCredit {
		return TransactionTypeCreditDeposit
	}
	return TransactionTypeWalletDeposit
}

// WithdrawType returns the transaction type for a withdrawal from pool.
func WithdrawType(pool Pool) TransactionType {
	if pool == PoolCredit {
		return TransactionTypeCreditWithdraw
	}
	return TransactionTypeWalletWithdraw
}

// TransferType returns the transaction type for a transfer out of from.
func TransferType(from Pool) TransactionType {
	if from == PoolWallet {
		return TransactionTypeWalletToCredit
	}
	return TransactionTypeCreditToWallet
}

// TransactionStatus defines the outcome recorded for a monetary event.
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

// TransactionRecord is an immutable audit entry for one monetary event.
// Records are append-only: once written they are never modified or deleted,
// and they survive deletion of the owning user.
type TransactionRecord struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Type      TransactionType   `json:"type"`
	Amount    decimal.Decimal   `json:"amount"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewTransactionRecord creates a record for one attempted mutation.
func NewTransactionRecord(userID int64, txType TransactionType, amount decimal.Decimal, status TransactionStatus) *TransactionRecord {
	return &TransactionRecord{
		UserID:    userID,
		Type:      txType,
		Amount:    amount,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}

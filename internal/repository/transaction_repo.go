// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"nilebank/internal/domain"
)

// TransactionRepository defines the interface for the append-only
// transaction log. Records are never updated or deleted.
type TransactionRepository interface {
	// CreateTransaction appends a record, assigning its id.
	CreateTransaction(ctx context.Context, q DBExecutor, record *domain.TransactionRecord) error
	// GetTransactionsByUserID retrieves a page of records for userID,
	// newest first, along with the total count.
	GetTransactionsByUserID(ctx context.Context, q DBExecutor, userID int64, limit, offset int) ([]domain.TransactionRecord, int64, error)
}

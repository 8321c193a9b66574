// internal/repository/sqlite/transaction_sqlite.go
package sqlite

import (
	"context"
	"fmt"

	"nilebank/internal/domain"
	"nilebank/internal/repository"

	"github.com/shopspring/decimal"
)

// TransactionRepository implements repository.TransactionRepository for SQLite.
type TransactionRepository struct{}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository() repository.TransactionRepository {
	return &TransactionRepository{}
}

type transactionRow struct {
	ID        int64           `db:"id"`
	UserID    int64           `db:"user_id"`
	Type      string          `db:"type"`
	Amount    decimal.Decimal `db:"amount"`
	Status    string          `db:"status"`
	CreatedAt int64           `db:"created_at"`
}

func (r transactionRow) toDomain() domain.TransactionRecord {
	return domain.TransactionRecord{
		ID:        r.ID,
		UserID:    r.UserID,
		Type:      domain.TransactionType(r.Type),
		Amount:    r.Amount,
		Status:    domain.TransactionStatus(r.Status),
		CreatedAt: fromMillis(r.CreatedAt),
	}
}

// CreateTransaction appends a record using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, record *domain.TransactionRecord) error {
	query := `INSERT INTO transactions (user_id, type, amount, status, created_at)
              VALUES (?, ?, ?, ?, ?)`
	result, err := q.ExecContext(ctx, query,
		record.UserID, string(record.Type), record.Amount.String(),
		string(record.Status), toMillis(record.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to create transaction record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new transaction id: %w", err)
	}
	record.ID = id
	return nil
}

// GetTransactionsByUserID retrieves a page of records for userID, newest
// first, plus the total count.
func (r *TransactionRepository) GetTransactionsByUserID(ctx context.Context, q repository.DBExecutor, userID int64, limit, offset int) ([]domain.TransactionRecord, int64, error) {
	rows := []transactionRow{}
	query := `SELECT id, user_id, type, amount, status, created_at
              FROM transactions
              WHERE user_id = ?
              ORDER BY id DESC
              LIMIT ? OFFSET ?`
	if err := q.SelectContext(ctx, &rows, query, userID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to fetch transactions for user %d: %w", userID, err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM transactions WHERE user_id = ?`
	if err := q.GetContext(ctx, &totalCount, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("failed to get transaction count for user %d: %w", userID, err)
	}

	records := make([]domain.TransactionRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, totalCount, nil
}

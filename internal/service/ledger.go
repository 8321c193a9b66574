// internal/service/ledger.go
package service

import (
	"context"
	"fmt"

	"nilebank/internal/domain"
	"nilebank/internal/repository"
	"nilebank/internal/util"
	"nilebank/pkg/db"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// LedgerService owns every balance mutation on an account. All mutation paths
// run as one database transaction: read balances, validate, write balances,
// append the transaction record. Nothing observes an intermediate state.
type LedgerService interface {
	Deposit(ctx context.Context, userID int64, pool domain.Pool, amount decimal.Decimal) (*domain.Account, *domain.TransactionRecord, error)
	Withdraw(ctx context.Context, userID int64, pool domain.Pool, amount decimal.Decimal) (*domain.Account, *domain.TransactionRecord, error)
	Transfer(ctx context.Context, userID int64, fromPool, toPool domain.Pool, amount decimal.Decimal) (*domain.Account, *domain.TransactionRecord, error)
	Balances(ctx context.Context, userID int64) (*domain.Account, error)
	History(ctx context.Context, userID int64, limit, offset int) ([]domain.TransactionRecord, int64, error)
}

// ledgerService implements the LedgerService interface.
type ledgerService struct {
	db           *sqlx.DB
	accounts     repository.AccountRepository
	transactions repository.TransactionRepository
}

// NewLedgerService creates a new instance of LedgerService.
func NewLedgerService(database *sqlx.DB, accounts repository.AccountRepository, transactions repository.TransactionRepository) LedgerService {
	return &ledgerService{
		db:           database,
		accounts:     accounts,
		transactions: transactions,
	}
}

// Deposit increases the chosen pool by amount. It has no upper bound; once
// the amount is valid it always succeeds.
func (s *ledgerService) Deposit(ctx context.Context, userID int64, pool domain.Pool, amount decimal.Decimal) (*domain.Account, *domain.TransactionRecord, error) {
	if !pool.Valid() {
		return nil, nil, util.ErrInvalidPool
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, util.ErrInvalidAmount
	}

	tx, err := db.BeginTx(ctx, s.db)
	if err != nil {
		return nil, nil, fmt.Errorf("deposit: %w", err)
	}
	defer db.RollbackTx(tx)

	account, err := s.accounts.GetAccountByUserID(ctx, tx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("deposit: failed to get account for user %d: %w", userID, err)
	}

	account.SetBalance(pool, account.Balance(pool).Add(amount))
	if err := s.accounts.UpdateBalances(ctx, tx, userID, account.Credit, account.WalletBalance); err != nil {
		return nil, nil, fmt.Errorf("deposit: failed to update balances: %w", err)
	}

	record := domain.NewTransactionRecord(userID, domain.DepositType(pool), amount, domain.TransactionStatusSuccess)
	if err := s.transactions.CreateTransaction(ctx, tx, record); err != nil {
		return nil, nil, fmt.Errorf("deposit: failed to create transaction record: %w", err)
	}

	if err := db.CommitTx(tx); err != nil {
		return nil, nil, fmt.Errorf("deposit: %w", err)
	}
	return account, record, nil
}

// Withdraw decreases the chosen pool by amount. Insufficient funds leave the
// balances untouched and append a failed record.
func (s *ledgerService) Withdraw(ctx context.Context, userID int64, pool domain.Pool, amount decimal.Decimal) (*domain.Account, *domain.TransactionRecord, error) {
	if !pool.Valid() {
		return nil, nil, util.ErrInvalidPool
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, util.ErrInvalidAmount
	}

	tx, err := db.BeginTx(ctx, s.db)
	if err != nil {
		return nil, nil, fmt.Errorf("withdraw: %w", err)
	}
	defer db.RollbackTx(tx)

	account, err := s.accounts.GetAccountByUserID(ctx, tx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("withdraw: failed to get account for user %d: %w", userID, err)
	}

	if account.Balance(pool).LessThan(amount) {
		if err := s.recordFailure(ctx, tx, userID, domain.WithdrawType(pool), amount); err != nil {
			return nil, nil, fmt.Errorf("withdraw: %w", err)
		}
		return nil, nil, util.ErrInsufficientFunds
	}

	account.SetBalance(pool, account.Balance(pool).Sub(amount))
	if err := s.accounts.UpdateBalances(ctx, tx, userID, account.Credit, account.WalletBalance); err != nil {
		return nil, nil, fmt.Errorf("withdraw: failed to update balances: %w", err)
	}

	record := domain.NewTransactionRecord(userID, domain.WithdrawType(pool), amount, domain.TransactionStatusSuccess)
	if err := s.transactions.CreateTransaction(ctx, tx, record); err != nil {
		return nil, nil, fmt.Errorf("withdraw: failed to create transaction record: %w", err)
	}

	if err := db.CommitTx(tx); err != nil {
		return nil, nil, fmt.Errorf("withdraw: %w", err)
	}
	return account, record, nil
}

// Transfer moves amount between the two pools of one account. Both balance
// writes commit together or not at all.
func (s *ledgerService) Transfer(ctx context.Context, userID int64, fromPool, toPool domain.Pool, amount decimal.Decimal) (*domain.Account, *domain.TransactionRecord, error) {
	if !fromPool.Valid() || !toPool.Valid() {
		return nil, nil, util.ErrInvalidPool
	}
	if fromPool == toPool {
		return nil, nil, util.ErrSamePoolTransfer
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, util.ErrInvalidAmount
	}

	tx, err := db.BeginTx(ctx, s.db)
	if err != nil {
		return nil, nil, fmt.Errorf("transfer: %w", err)
	}
	defer db.RollbackTx(tx)

	account, err := s.accounts.GetAccountByUserID(ctx, tx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("transfer: failed to get account for user %d: %w", userID, err)
	}

	if account.Balance(fromPool).LessThan(amount) {
		if err := s.recordFailure(ctx, tx, userID, domain.TransferType(fromPool), amount); err != nil {
			return nil, nil, fmt.Errorf("transfer: %w", err)
		}
		return nil, nil, util.ErrInsufficientFunds
	}

	account.SetBalance(fromPool, account.Balance(fromPool).Sub(amount))
	account.SetBalance(toPool, account.Balance(toPool).Add(amount))
	if err := s.accounts.UpdateBalances(ctx, tx, userID, account.Credit, account.WalletBalance); err != nil {
		return nil, nil, fmt.Errorf("transfer: failed to update balances: %w", err)
	}

	record := domain.NewTransactionRecord(userID, domain.TransferType(fromPool), amount, domain.TransactionStatusSuccess)
	if err := s.transactions.CreateTransaction(ctx, tx, record); err != nil {
		return nil, nil, fmt.Errorf("transfer: failed to create transaction record: %w", err)
	}

	if err := db.CommitTx(tx); err != nil {
		return nil, nil, fmt.Errorf("transfer: %w", err)
	}
	return account, record, nil
}

// Balances returns the latest committed balances for the account.
func (s *ledgerService) Balances(ctx context.Context, userID int64) (*domain.Account, error) {
	account, err := s.accounts.GetAccountByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("balances: failed to get account for user %d: %w", userID, err)
	}
	return account, nil
}

// History returns a page of transaction records, newest first.
func (s *ledgerService) History(ctx context.Context, userID int64, limit, offset int) ([]domain.TransactionRecord, int64, error) {
	if _, err := s.accounts.GetAccountByUserID(ctx, s.db, userID); err != nil {
		return nil, 0, fmt.Errorf("history: %w", err)
	}
	records, totalCount, err := s.transactions.GetTransactionsByUserID(ctx, s.db, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("history: %w", err)
	}
	return records, totalCount, nil
}

// recordFailure appends a failed record for a rejected attempt and commits
// it. Balances were never touched in this transaction.
func (s *ledgerService) recordFailure(ctx context.Context, tx *sqlx.Tx, userID int64, txType domain.TransactionType, amount decimal.Decimal) error {
	record := domain.NewTransactionRecord(userID, txType, amount, domain.TransactionStatusFailed)
	if err := s.transactions.CreateTransaction(ctx, tx, record); err != nil {
		return fmt.Errorf("failed to record rejected attempt: %w", err)
	}
	return db.CommitTx(tx)
}

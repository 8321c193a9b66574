// internal/service/ledger_test.go
package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nilebank/internal/audit"
	"nilebank/internal/auth"
	"nilebank/internal/domain"
	"nilebank/internal/repository"
	"nilebank/internal/repository/sqlite"
	"nilebank/internal/util"
	"nilebank/pkg/db"
)

// testEnv wires the services against a throwaway sqlite database.
type testEnv struct {
	db           *sqlx.DB
	ledger       LedgerService
	directory    DirectoryService
	transactions repository.TransactionRepository
	trailPath    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	database, err := db.Open(filepath.Join(dir, "banking.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	users := sqlite.NewUserRepository()
	accounts := sqlite.NewAccountRepository()
	transactions := sqlite.NewTransactionRepository()
	trailPath := filepath.Join(dir, "logs.txt")
	trail := audit.NewTrail(trailPath)

	return &testEnv{
		db:           database,
		ledger:       NewLedgerService(database, accounts, transactions),
		directory:    NewDirectoryService(database, users, accounts, auth.NewBcryptHasher(), trail),
		transactions: transactions,
		trailPath:    trailPath,
	}
}

// newCustomer registers a customer with a fresh zero-balance account.
func (e *testEnv) newCustomer(t *testing.T, name, nationalID string) int64 {
	t.Helper()
	user, err := e.directory.RegisterCustomer(context.Background(), name, nationalID, "01000000000", "Passw0rdOK")
	require.NoError(t, err)
	return user.ID
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newCustomer(t, "amira", "10000000000001")

	t.Run("SuccessfulDeposit", func(t *testing.T) {
		account, record, err := env.ledger.Deposit(ctx, userID, domain.PoolWallet, dec("100"))
		require.NoError(t, err)

		assert.True(t, account.Credit.Equal(decimal.Zero))
		assert.True(t, account.WalletBalance.Equal(dec("100")))
		assert.Equal(t, domain.TransactionTypeWalletDeposit, record.Type)
		assert.Equal(t, domain.TransactionStatusSuccess, record.Status)
		assert.True(t, record.Amount.Equal(dec("100")))
	})

	t.Run("InvalidAmount", func(t *testing.T) {
		_, _, err := env.ledger.Deposit(ctx, userID, domain.PoolWallet, dec("0"))
		assert.ErrorIs(t, err, util.ErrInvalidAmount)

		_, _, err = env.ledger.Deposit(ctx, userID, domain.PoolCredit, dec("-5"))
		assert.ErrorIs(t, err, util.ErrInvalidAmount)

		// No balance change, no record for rejected input.
		account, err := env.ledger.Balances(ctx, userID)
		require.NoError(t, err)
		assert.True(t, account.WalletBalance.Equal(dec("100")))

		records, total, err := env.ledger.History(ctx, userID, 10, 0)
		require.NoError(t, err)
		assert.Len(t, records, 1)
		assert.EqualValues(t, 1, total)
	})

	t.Run("UnknownPool", func(t *testing.T) {
		_, _, err := env.ledger.Deposit(ctx, userID, domain.Pool("savings"), dec("10"))
		assert.ErrorIs(t, err, util.ErrInvalidPool)
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		_, _, err := env.ledger.Deposit(ctx, 9999, domain.PoolWallet, dec("10"))
		assert.ErrorIs(t, err, util.ErrAccountNotFound)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newCustomer(t, "bassem", "10000000000002")

	_, _, err := env.ledger.Deposit(ctx, userID, domain.PoolCredit, dec("500"))
	require.NoError(t, err)

	t.Run("SuccessfulWithdrawal", func(t *testing.T) {
		account, record, err := env.ledger.Withdraw(ctx, userID, domain.PoolCredit, dec("100"))
		require.NoError(t, err)
		assert.True(t, account.Credit.Equal(dec("400")))
		assert.Equal(t, domain.TransactionTypeCreditWithdraw, record.Type)
		assert.Equal(t, domain.TransactionStatusSuccess, record.Status)
	})

	t.Run("RoundTripRestoresBalance", func(t *testing.T) {
		before, err := env.ledger.Balances(ctx, userID)
		require.NoError(t, err)

		_, _, err = env.ledger.Withdraw(ctx, userID, domain.PoolCredit, dec("123.45"))
		require.NoError(t, err)
		_, _, err = env.ledger.Deposit(ctx, userID, domain.PoolCredit, dec("123.45"))
		require.NoError(t, err)

		after, err := env.ledger.Balances(ctx, userID)
		require.NoError(t, err)
		assert.True(t, before.Credit.Equal(after.Credit))
		assert.True(t, before.WalletBalance.Equal(after.WalletBalance))
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		before, err := env.ledger.Balances(ctx, userID)
		require.NoError(t, err)
		_, beforeTotal, err := env.ledger.History(ctx, userID, 1, 0)
		require.NoError(t, err)

		_, _, err = env.ledger.Withdraw(ctx, userID, domain.PoolCredit, before.Credit.Add(dec("0.01")))
		assert.ErrorIs(t, err, util.ErrInsufficientFunds)

		// Balances untouched, but the rejected attempt is on record.
		after, err := env.ledger.Balances(ctx, userID)
		require.NoError(t, err)
		assert.True(t, before.Credit.Equal(after.Credit))
		assert.True(t, before.WalletBalance.Equal(after.WalletBalance))

		records, afterTotal, err := env.ledger.History(ctx, userID, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, beforeTotal+1, afterTotal)
		require.Len(t, records, 1)
		assert.Equal(t, domain.TransactionStatusFailed, records[0].Status)
		assert.Equal(t, domain.TransactionTypeCreditWithdraw, records[0].Type)
	})
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newCustomer(t, "dalia", "10000000000003")

	_, _, err := env.ledger.Deposit(ctx, userID, domain.PoolCredit, dec("100"))
	require.NoError(t, err)

	t.Run("SuccessfulTransfer", func(t *testing.T) {
		account, record, err := env.ledger.Transfer(ctx, userID, domain.PoolCredit, domain.PoolWallet, dec("40"))
		require.NoError(t, err)
		assert.True(t, account.Credit.Equal(dec("60")))
		assert.True(t, account.WalletBalance.Equal(dec("40")))
		assert.Equal(t, domain.TransactionTypeCreditToWallet, record.Type)
	})

	t.Run("RoundTripRestoresBothPools", func(t *testing.T) {
		_, _, err := env.ledger.Transfer(ctx, userID, domain.PoolWallet, domain.PoolCredit, dec("40"))
		require.NoError(t, err)

		account, err := env.ledger.Balances(ctx, userID)
		require.NoError(t, err)
		assert.True(t, account.Credit.Equal(dec("100")))
		assert.True(t, account.WalletBalance.Equal(decimal.Zero))
	})

	t.Run("SamePoolTransfer", func(t *testing.T) {
		_, _, err := env.ledger.Transfer(ctx, userID, domain.PoolCredit, domain.PoolCredit, dec("10"))
		assert.ErrorIs(t, err, util.ErrSamePoolTransfer)
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		before, err := env.ledger.Balances(ctx, userID)
		require.NoError(t, err)

		_, _, err = env.ledger.Transfer(ctx, userID, domain.PoolWallet, domain.PoolCredit, dec("1000"))
		assert.ErrorIs(t, err, util.ErrInsufficientFunds)

		// Both pools unchanged, one failed record.
		after, err := env.ledger.Balances(ctx, userID)
		require.NoError(t, err)
		assert.True(t, before.Credit.Equal(after.Credit))
		assert.True(t, before.WalletBalance.Equal(after.WalletBalance))

		records, _, err := env.ledger.History(ctx, userID, 1, 0)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, domain.TransactionStatusFailed, records[0].Status)
		assert.Equal(t, domain.TransactionTypeWalletToCredit, records[0].Type)
	})
}

// The dashboard walkthrough: fresh account, wallet deposit, partial transfer
// to credit, then an over-large credit withdrawal that must change nothing.
func TestAccountScenario(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newCustomer(t, "ehab", "10000000000004")

	account, err := env.ledger.Balances(ctx, userID)
	require.NoError(t, err)
	assert.True(t, account.Credit.Equal(decimal.Zero))
	assert.True(t, account.WalletBalance.Equal(decimal.Zero))

	account, _, err = env.ledger.Deposit(ctx, userID, domain.PoolWallet, dec("100"))
	require.NoError(t, err)
	assert.True(t, account.WalletBalance.Equal(dec("100")))

	account, _, err = env.ledger.Transfer(ctx, userID, domain.PoolWallet, domain.PoolCredit, dec("40"))
	require.NoError(t, err)
	assert.True(t, account.Credit.Equal(dec("40")))
	assert.True(t, account.WalletBalance.Equal(dec("60")))

	_, _, err = env.ledger.Withdraw(ctx, userID, domain.PoolCredit, dec("50"))
	assert.ErrorIs(t, err, util.ErrInsufficientFunds)

	account, err = env.ledger.Balances(ctx, userID)
	require.NoError(t, err)
	assert.True(t, account.Credit.Equal(dec("40")))
	assert.True(t, account.WalletBalance.Equal(dec("60")))
}

// Repeated small deposits must sum exactly, with no float drift.
func TestDecimalExactness(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newCustomer(t, "farid", "10000000000005")

	for i := 0; i < 10; i++ {
		_, _, err := env.ledger.Deposit(ctx, userID, domain.PoolWallet, dec("0.10"))
		require.NoError(t, err)
	}
	account, err := env.ledger.Balances(ctx, userID)
	require.NoError(t, err)
	assert.True(t, account.WalletBalance.Equal(dec("1")), "got %s", account.WalletBalance)

	_, _, err = env.ledger.Withdraw(ctx, userID, domain.PoolWallet, dec("1.00"))
	require.NoError(t, err)

	account, err = env.ledger.Balances(ctx, userID)
	require.NoError(t, err)
	assert.True(t, account.WalletBalance.Equal(decimal.Zero))
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	userID := env.newCustomer(t, "ghada", "10000000000006")

	_, _, err := env.ledger.Deposit(ctx, userID, domain.PoolWallet, dec("500"))
	require.NoError(t, err)
	_, _, err = env.ledger.Withdraw(ctx, userID, domain.PoolWallet, dec("150"))
	require.NoError(t, err)
	_, _, err = env.ledger.Deposit(ctx, userID, domain.PoolWallet, dec("200"))
	require.NoError(t, err)

	records, total, err := env.ledger.History(ctx, userID, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, records, 3)

	// Newest first.
	assert.Equal(t, domain.TransactionTypeWalletDeposit, records[0].Type)
	assert.True(t, records[0].Amount.Equal(dec("200")))
	assert.Equal(t, domain.TransactionTypeWalletWithdraw, records[1].Type)
	assert.Equal(t, domain.TransactionTypeWalletDeposit, records[2].Type)
	assert.True(t, records[0].ID > records[1].ID)
	assert.True(t, records[1].ID > records[2].ID)

	t.Run("Pagination", func(t *testing.T) {
		page, total, err := env.ledger.History(ctx, userID, 2, 2)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, page, 1)
		assert.True(t, page[0].Amount.Equal(dec("500")))
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		_, _, err := env.ledger.History(ctx, 9999, 10, 0)
		assert.ErrorIs(t, err, util.ErrAccountNotFound)
	})
}

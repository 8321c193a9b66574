package db

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver
)

// schemaStmts holds the idempotent schema for the banking store. Balances and
// amounts are stored as decimal strings, timestamps as unix milliseconds.
var schemaStmts = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		national_id TEXT UNIQUE NOT NULL,
		phone_number TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		is_locked INTEGER NOT NULL DEFAULT 0,
		role TEXT NOT NULL CHECK(role IN ('admin', 'customer')),
		created_at INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER UNIQUE NOT NULL REFERENCES users(id),
		credit TEXT NOT NULL DEFAULT '0',
		wallet_balance TEXT NOT NULL DEFAULT '0',
		updated_at INTEGER NOT NULL
	);`,
	// No ON DELETE action on user_id: transaction history outlives its user.
	`CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		type TEXT NOT NULL,
		amount TEXT NOT NULL,
		status TEXT NOT NULL CHECK(status IN ('success', 'failed')),
		created_at INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS transactions_user_id_idx ON transactions(user_id);`,
}

// Open opens the SQLite database at path and applies the schema.
func Open(path string) (*sqlx.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	database, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// A single writer at a time keeps sqlite's locking out of the picture.
	database.SetMaxOpenConns(1)
	database.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := ensureForeignKeysEnabled(ctx, database); err != nil {
		_ = database.Close()
		return nil, err
	}

	for _, stmt := range schemaStmts {
		if _, err := database.ExecContext(ctx, stmt); err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return database, nil
}

// ensureForeignKeysEnabled guards against the connection pragmas silently
// not taking effect: a driver change or DSN typo would otherwise leave the
// accounts->users constraint unenforced.
func ensureForeignKeysEnabled(ctx context.Context, database *sqlx.DB) error {
	var enabled int
	if err := database.GetContext(ctx, &enabled, `PRAGMA foreign_keys`); err != nil {
		return fmt.Errorf("check sqlite foreign key pragma: %w", err)
	}
	if enabled != 1 {
		return fmt.Errorf("sqlite foreign keys are not enabled")
	}
	return nil
}

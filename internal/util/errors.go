// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateIdentity  = errors.New("national id already registered")
	ErrWeakCredential     = errors.New("password does not meet the strength policy")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidPool        = errors.New("unknown balance pool")
	ErrSamePoolTransfer   = errors.New("cannot transfer within the same pool")
	ErrInsufficientFunds  = errors.New("insufficient funds")
)

// IsError reports whether err matches target in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}

// internal/auth/policy.go
package auth

import "unicode"

// StrongPassword reports whether plain satisfies the strength policy:
// at least 8 characters with at least one uppercase letter, one lowercase
// letter and one digit.
func StrongPassword(plain string) bool {
	if len(plain) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

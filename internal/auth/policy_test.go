// internal/auth/policy_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrongPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"Valid", "Passw0rd", true},
		{"ValidLong", "Str0ngerPassword", true},
		{"TooShort", "Pa55wor", false},
		{"NoUppercase", "passw0rd", false},
		{"NoLowercase", "PASSW0RD", false},
		{"NoDigit", "Password", false},
		{"Empty", "", false},
		{"DigitsOnly", "12345678", false},
		{"SymbolsAllowed", "P@ssw0rd!", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StrongPassword(tc.password))
		})
	}
}

// internal/auth/password_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("Passw0rdOK")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rdOK", hash)

	assert.True(t, hasher.Verify("Passw0rdOK", hash))
	assert.False(t, hasher.Verify("WrongPass1", hash))
	assert.False(t, hasher.Verify("Passw0rdOK", "not-a-bcrypt-hash"))

	// Same input hashes to different values thanks to the salt.
	other, err := hasher.Hash("Passw0rdOK")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

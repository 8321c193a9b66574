// internal/auth/token_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nilebank/internal/domain"
)

func TestTokenManager(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	user := &domain.User{ID: 42, Role: domain.RoleAdmin}

	tokenStr, err := manager.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	t.Run("RoundTrip", func(t *testing.T) {
		claims, err := manager.Parse(tokenStr)
		require.NoError(t, err)
		assert.EqualValues(t, 42, claims.UserID)
		assert.Equal(t, string(domain.RoleAdmin), claims.Role)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Hour)
		_, err := other.Parse(tokenStr)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := manager.Parse("not.a.token")
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewTokenManager("test-secret", -time.Minute)
		tokenStr, err := expired.Generate(user)
		require.NoError(t, err)
		_, err = manager.Parse(tokenStr)
		assert.Error(t, err)
	})
}

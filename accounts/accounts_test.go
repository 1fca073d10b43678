package accounts_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rmcgill/medialounge/accounts"
)

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "alice@example.com", accounts.NormalizeEmail("  Alice@Example.COM  "))
	require.Equal(t, "bob@example.com", accounts.NormalizeEmail("bob@example.com"))
	require.Equal(t, "", accounts.NormalizeEmail("   "))
}

func TestPasswordHashing(t *testing.T) {
	t.Run("hash verifies against its password", func(t *testing.T) {
		hash, err := accounts.HashPassword("correct horse battery")
		require.NoError(t, err)
		require.True(t, accounts.CheckPasswordHash("correct horse battery", hash))
		require.False(t, accounts.CheckPasswordHash("correct horse", hash))
	})

	t.Run("hashing is salted per call", func(t *testing.T) {
		first, err := accounts.HashPassword("same password")
		require.NoError(t, err)
		second, err := accounts.HashPassword("same password")
		require.NoError(t, err)
		require.NotEqual(t, first, second)
	})
}

func TestAccountJSONOmitsPasswordHash(t *testing.T) {
	account := accounts.Account{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
		CreatedAt:    time.Now(),
	}

	payload, err := json.Marshal(account)
	require.NoError(t, err)
	require.NotContains(t, string(payload), "secret")
	require.NotContains(t, string(payload), "password_hash")
}

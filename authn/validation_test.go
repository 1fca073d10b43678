package authn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rmcgill/medialounge/authn"
)

func TestValidateEmail(t *testing.T) {
	t.Run("accepts plain address", func(t *testing.T) {
		require.NoError(t, authn.ValidateEmail("alice@example.com"))
	})

	t.Run("accepts surrounding whitespace", func(t *testing.T) {
		require.NoError(t, authn.ValidateEmail("  alice@example.com "))
	})

	t.Run("rejects empty", func(t *testing.T) {
		err := authn.ValidateEmail("")
		require.ErrorIs(t, err, authn.ErrValidation)
		require.Contains(t, err.Error(), "required")
	})

	t.Run("rejects missing at sign", func(t *testing.T) {
		require.ErrorIs(t, authn.ValidateEmail("alice.example.com"), authn.ErrValidation)
	})

	t.Run("rejects empty local part", func(t *testing.T) {
		require.ErrorIs(t, authn.ValidateEmail("@example.com"), authn.ErrValidation)
	})

	t.Run("rejects empty domain", func(t *testing.T) {
		require.ErrorIs(t, authn.ValidateEmail("alice@"), authn.ErrValidation)
	})

	t.Run("rejects dotless domain", func(t *testing.T) {
		require.ErrorIs(t, authn.ValidateEmail("alice@localhost"), authn.ErrValidation)
	})

	t.Run("rejects domain edge dots", func(t *testing.T) {
		require.ErrorIs(t, authn.ValidateEmail("alice@.example.com"), authn.ErrValidation)
		require.ErrorIs(t, authn.ValidateEmail("alice@example.com."), authn.ErrValidation)
	})
}

func TestValidatePassword(t *testing.T) {
	t.Run("accepts at minimum length", func(t *testing.T) {
		require.NoError(t, authn.ValidatePassword("abcdef", 6))
	})

	t.Run("rejects below minimum length", func(t *testing.T) {
		err := authn.ValidatePassword("abcde", 6)
		require.ErrorIs(t, err, authn.ErrValidation)
		require.Contains(t, err.Error(), "at least 6 characters")
	})

	t.Run("rejects empty", func(t *testing.T) {
		require.ErrorIs(t, authn.ValidatePassword("", 6), authn.ErrValidation)
	})

	t.Run("zero minimum falls back to default", func(t *testing.T) {
		require.ErrorIs(t, authn.ValidatePassword("abc", 0), authn.ErrValidation)
		require.NoError(t, authn.ValidatePassword("abcdef", 0))
	})

	t.Run("custom minimum is honoured", func(t *testing.T) {
		require.ErrorIs(t, authn.ValidatePassword("abcdefg", 10), authn.ErrValidation)
		require.NoError(t, authn.ValidatePassword("abcdefghij", 10))
	})
}

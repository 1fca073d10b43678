package authn_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rmcgill/medialounge/accounts"
	fakeaccountrepo "github.com/rmcgill/medialounge/accounts/repofake"
	"github.com/rmcgill/medialounge/authn"
	"github.com/rmcgill/medialounge/sessions"
)

func newService(t *testing.T, options ...authn.ServiceOption) (*authn.Service, *fakeaccountrepo.FakeAccountRepo, *sessions.InMemoryRepo) {
	t.Helper()
	accountRepo := fakeaccountrepo.New()
	sessionRepo := sessions.NewInMemoryRepo()
	service, err := authn.NewService(accountRepo, sessionRepo, authn.ServiceConfig{}, options...)
	require.NoError(t, err)
	return service, accountRepo, sessionRepo
}

func TestService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account with normalized email", func(t *testing.T) {
		service, _, _ := newService(t)

		account, err := service.Signup(ctx, "  Alice@Example.COM ", "sufficiently-long")
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", account.Email)
		require.NotEmpty(t, account.PasswordHash)
		require.NotContains(t, account.PasswordHash, "sufficiently-long")
	})

	t.Run("does not log the user in", func(t *testing.T) {
		service, _, sessionRepo := newService(t)

		_, err := service.Signup(ctx, "bob@example.com", "password1")
		require.NoError(t, err)
		require.Zero(t, sessionRepo.Len())
	})

	t.Run("rejects duplicate email after normalization", func(t *testing.T) {
		service, _, _ := newService(t)

		_, err := service.Signup(ctx, "A@B.com", "password1")
		require.NoError(t, err)

		_, err = service.Signup(ctx, "a@b.com", "different-password")
		require.ErrorIs(t, err, accounts.ErrDuplicateEmail)
	})

	t.Run("rejects short password", func(t *testing.T) {
		service, _, _ := newService(t)

		_, err := service.Signup(ctx, "carol@example.com", "tiny")
		require.ErrorIs(t, err, authn.ErrValidation)
	})

	t.Run("same password yields distinct hashes", func(t *testing.T) {
		service, _, _ := newService(t)

		first, err := service.Signup(ctx, "one@example.com", "shared-password")
		require.NoError(t, err)
		second, err := service.Signup(ctx, "two@example.com", "shared-password")
		require.NoError(t, err)

		require.NotEqual(t, first.PasswordHash, second.PasswordHash)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		service, _, _ := newService(t)
		_, err := service.Signup(ctx, "alice@example.com", "password1")
		require.NoError(t, err)

		session, err := service.Login(ctx, "alice@example.com", "password1")
		require.NoError(t, err)
		require.NotEmpty(t, session.ID)
		require.Equal(t, "alice@example.com", session.Email)
		require.True(t, session.ExpiresAt.After(session.CreatedAt))
	})

	t.Run("email is normalized before lookup", func(t *testing.T) {
		service, _, _ := newService(t)
		_, err := service.Signup(ctx, "alice@example.com", "password1")
		require.NoError(t, err)

		session, err := service.Login(ctx, " ALICE@example.com ", "password1")
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", session.Email)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		service, _, _ := newService(t)
		_, err := service.Signup(ctx, "alice@example.com", "password1")
		require.NoError(t, err)

		_, errWrongPassword := service.Login(ctx, "alice@example.com", "not-the-password")
		_, errUnknownEmail := service.Login(ctx, "nobody@example.com", "password1")

		require.ErrorIs(t, errWrongPassword, authn.ErrInvalidCredentials)
		require.ErrorIs(t, errUnknownEmail, authn.ErrInvalidCredentials)
		require.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	})

	t.Run("each login creates its own session", func(t *testing.T) {
		service, _, _ := newService(t)
		_, err := service.Signup(ctx, "alice@example.com", "password1")
		require.NoError(t, err)

		first, err := service.Login(ctx, "alice@example.com", "password1")
		require.NoError(t, err)
		second, err := service.Login(ctx, "alice@example.com", "password1")
		require.NoError(t, err)

		require.NotEqual(t, first.ID, second.ID)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newService(t)

	_, err := service.Signup(ctx, "alice@example.com", "password1")
	require.NoError(t, err)
	session, err := service.Login(ctx, "alice@example.com", "password1")
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, session.ID))

	_, err = service.CurrentSession(ctx, session.ID)
	require.ErrorIs(t, err, sessions.ErrNotFound)

	// Idempotent: repeating it, or using an unknown id, is a no-op.
	require.NoError(t, service.Logout(ctx, session.ID))
	require.NoError(t, service.Logout(ctx, "never-issued"))
	require.NoError(t, service.Logout(ctx, ""))
}

func TestService_CurrentSession_Expiry(t *testing.T) {
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &now
	service, _, _ := newService(t, authn.WithNowTime(func() time.Time { return *clock }))

	_, err := service.Signup(ctx, "alice@example.com", "password1")
	require.NoError(t, err)
	session, err := service.Login(ctx, "alice@example.com", "password1")
	require.NoError(t, err)

	resolved, err := service.CurrentSession(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, session.ID, resolved.ID)

	later := now.Add(authn.DefaultSessionTTL + time.Minute)
	clock = &later

	_, err = service.CurrentSession(ctx, session.ID)
	require.ErrorIs(t, err, sessions.ErrNotFound)
}

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newService(t)

	_, err := service.Signup(ctx, "alice@example.com", "original-password")
	require.NoError(t, err)
	session, err := service.Login(ctx, "alice@example.com", "original-password")
	require.NoError(t, err)

	t.Run("rejects wrong current password", func(t *testing.T) {
		err := service.ChangePassword(ctx, session.ID, "not-the-password", "replacement-password")
		require.ErrorIs(t, err, authn.ErrInvalidCredentials)
	})

	t.Run("rejects short new password", func(t *testing.T) {
		err := service.ChangePassword(ctx, session.ID, "original-password", "tiny")
		require.ErrorIs(t, err, authn.ErrValidation)
	})

	t.Run("replaces the password", func(t *testing.T) {
		err := service.ChangePassword(ctx, session.ID, "original-password", "replacement-password")
		require.NoError(t, err)

		_, err = service.Login(ctx, "alice@example.com", "original-password")
		require.ErrorIs(t, err, authn.ErrInvalidCredentials)

		_, err = service.Login(ctx, "alice@example.com", "replacement-password")
		require.NoError(t, err)
	})
}

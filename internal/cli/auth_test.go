package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	fakeaccountrepo "github.com/rmcgill/medialounge/accounts/repofake"
	"github.com/rmcgill/medialounge/authn"
	"github.com/rmcgill/medialounge/sessions"
)

// stubInput replaces the interactive input seams for one test.
func stubInput(t *testing.T, email, password string) {
	t.Helper()

	origText := getSimpleText
	origPassword := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})

	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return email, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	accountRepo := fakeaccountrepo.New()
	service, err := authn.NewService(accountRepo, sessions.NewInMemoryRepo(), authn.ServiceConfig{})
	require.NoError(t, err)

	return &App{
		authn:       service,
		accountRepo: accountRepo,
	}
}

func TestAppSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	stubInput(t, "alice@example.com", "password1")
	require.NoError(t, app.Signup(ctx))
	require.False(t, app.isLoggedIn())

	require.NoError(t, app.Login(ctx))
	require.True(t, app.isLoggedIn())
	require.Equal(t, "alice@example.com", app.session.Email)
}

func TestAppLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	stubInput(t, "alice@example.com", "password1")
	require.NoError(t, app.Signup(ctx))

	stubInput(t, "alice@example.com", "not-the-password")
	require.NoError(t, app.Login(ctx))
	require.False(t, app.isLoggedIn())
}

func TestAppSignupDuplicate(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	stubInput(t, "alice@example.com", "password1")
	require.NoError(t, app.Signup(ctx))

	// A duplicate is reported to the user, not surfaced as an error.
	require.NoError(t, app.Signup(ctx))
}

func TestAppLogout(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	stubInput(t, "alice@example.com", "password1")
	require.NoError(t, app.Signup(ctx))
	require.NoError(t, app.Login(ctx))
	require.True(t, app.isLoggedIn())

	require.NoError(t, app.Logout(ctx))
	require.False(t, app.isLoggedIn())

	// Logging out while logged out is fine.
	require.NoError(t, app.Logout(ctx))
}

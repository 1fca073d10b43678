package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rmcgill/medialounge/accounts"
	"github.com/rmcgill/medialounge/authn"
	"github.com/rmcgill/medialounge/sessions"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for an email and password and creates a new account.
// A successful signup does not log the user in; they still have to run
// the login command.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	_, err = a.authn.Signup(ctx, email, string(password))
	switch {
	case errors.Is(err, authn.ErrValidation):
		fmt.Println(err.Error())
		return nil
	case errors.Is(err, accounts.ErrDuplicateEmail):
		fmt.Println("An account with that email already exists")
		return nil
	case err != nil:
		return err
	}

	fmt.Println("Account created. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and starts a session. Unknown email and
// wrong password produce the same message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	session, err := a.authn.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, authn.ErrInvalidCredentials) {
			fmt.Println("Invalid email or password")
			return nil
		}
		return err
	}

	a.session = session
	fmt.Printf("Logged in as %s\n", session.Email)
	return nil
}

// Logout ends the current session. Running it while logged out is fine.
func (a *App) Logout(ctx context.Context) error {
	if a.session == nil {
		fmt.Println("Not logged in")
		return nil
	}
	if err := a.authn.Logout(ctx, a.session.ID); err != nil {
		return err
	}
	a.session = nil
	fmt.Println("Logged out")
	return nil
}

// Whoami prints the current session's identity, refreshing it against the
// session store so an expired session is noticed here rather than later.
func (a *App) Whoami(ctx context.Context) error {
	if a.session == nil {
		fmt.Println("Not logged in")
		return nil
	}

	session, err := a.authn.CurrentSession(ctx, a.session.ID)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			a.session = nil
			fmt.Println("Session expired, please log in again")
			return nil
		}
		return err
	}

	fmt.Printf("%s (session expires %s)\n", session.Email, session.ExpiresAt.Format("15:04 Jan 2"))
	return nil
}

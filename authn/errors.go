package authn

import "errors"

var (
	// ErrValidation marks user-correctable input problems. Wrapped with a
	// detail message, e.g. fmt.Errorf("%w: password too short", ErrValidation).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password". The two cases are deliberately indistinguishable so a
	// caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

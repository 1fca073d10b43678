package accounts

import "errors"

var (
	// ErrDuplicateEmail is returned by Create when another account already
	// owns the normalized email. Recoverable - the caller should prompt for
	// a different address.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound is the expected result of looking up an absent account.
	// Match with errors.Is; it is not an internal failure.
	ErrNotFound = errors.New("account not found")

	// ErrStorageUnavailable wraps failures of the backing store itself
	// (bad DSN, closed pool, broken connection). Fatal for the current
	// operation; retry policy belongs to the caller.
	ErrStorageUnavailable = errors.New("account storage unavailable")
)

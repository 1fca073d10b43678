package accounts

import "context"

// Repo is the storage contract for accounts. Implementations must enforce
// email uniqueness themselves (constraint, not read-then-write) so that
// concurrent Creates with the same normalized email serialize to exactly
// one winner.
type Repo interface {
	// Create persists a new account. The email is normalized before
	// storage. Returns ErrDuplicateEmail if the normalized email exists.
	Create(ctx context.Context, email, passwordHash string) (*Account, error)

	// GetByEmail returns the account for a normalized email, or
	// ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// List returns all accounts in insertion (id) order. Diagnostics only.
	List(ctx context.Context) ([]*Account, error)

	// UpdatePasswordHash replaces the stored hash for an account.
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}

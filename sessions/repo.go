package sessions

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session id does not resolve. An ended or
// expired session looks the same as one that never existed.
var ErrNotFound = errors.New("session not found")

// Repo is the storage contract for sessions.
type Repo interface {
	// Upsert creates or replaces a session under its ID.
	Upsert(ctx context.Context, session *Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Delete removes a session. Deleting an absent session is a no-op,
	// which makes logout idempotent.
	Delete(ctx context.Context, sessionID string) error

	// DeleteExpired removes sessions whose expiry is before now.
	DeleteExpired(ctx context.Context, now time.Time) error
}

package sessions_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rmcgill/medialounge/sessions"
)

func newSession(id string, expiresAt time.Time) *sessions.Session {
	return &sessions.Session{
		ID:        id,
		AccountID: 1,
		Email:     "alice@example.com",
		CreatedAt: expiresAt.Add(-time.Hour),
		ExpiresAt: expiresAt,
	}
}

func TestInMemoryRepo_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := sessions.NewInMemoryRepo()

	session := newSession("s1", time.Now().Add(time.Hour))
	require.NoError(t, repo.Upsert(ctx, session))

	found, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, session.Email, found.Email)

	// The stored record is isolated from caller mutation.
	found.Email = "tampered@example.com"
	again, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", again.Email)
}

func TestInMemoryRepo_GetMissing(t *testing.T) {
	repo := sessions.NewInMemoryRepo()

	_, err := repo.Get(context.Background(), "never-stored")
	require.ErrorIs(t, err, sessions.ErrNotFound)
}

func TestInMemoryRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := sessions.NewInMemoryRepo()

	require.NoError(t, repo.Upsert(ctx, newSession("s1", time.Now().Add(time.Hour))))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, err := repo.Get(ctx, "s1")
	require.ErrorIs(t, err, sessions.ErrNotFound)

	// Deleting again is a no-op.
	require.NoError(t, repo.Delete(ctx, "s1"))
}

func TestInMemoryRepo_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := sessions.NewInMemoryRepo()
	now := time.Now()

	require.NoError(t, repo.Upsert(ctx, newSession("live", now.Add(time.Hour))))
	require.NoError(t, repo.Upsert(ctx, newSession("stale", now.Add(-time.Minute))))

	require.NoError(t, repo.DeleteExpired(ctx, now))

	_, err := repo.Get(ctx, "live")
	require.NoError(t, err)
	_, err = repo.Get(ctx, "stale")
	require.ErrorIs(t, err, sessions.ErrNotFound)
	require.Equal(t, 1, repo.Len())
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	session := newSession("s1", now)

	require.False(t, session.Expired(now.Add(-time.Second)))
	require.False(t, session.Expired(now))
	require.True(t, session.Expired(now.Add(time.Second)))

	var neverExpires sessions.Session
	require.False(t, neverExpires.Expired(now))
}

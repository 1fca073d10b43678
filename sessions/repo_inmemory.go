package sessions

import (
	"context"
	"sync"
	"time"
)

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryRepo keeps sessions in a process-local map. Suitable for a single
// instance; sessions vanish on restart, which matches the transport's
// "process lifetime" contract.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{sessions: make(map[string]*Session)}
}

func (r *InMemoryRepo) Upsert(ctx context.Context, session *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copy := *session
	r.sessions[session.ID] = &copy
	return nil
}

func (r *InMemoryRepo) Get(ctx context.Context, sessionID string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	copy := *session
	return &copy, nil
}

func (r *InMemoryRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// Len reports the number of stored sessions.
func (r *InMemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

func (r *InMemoryRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, id)
		}
	}
	return nil
}

// Package fakeaccountrepo is an in-memory accounts.Repo for tests and for
// running the app without a database. It mirrors the Postgres contract:
// normalized-email uniqueness under a lock, monotonically increasing ids,
// insertion-order listing.
package fakeaccountrepo

import (
	"context"
	"sync"
	"time"

	"github.com/rmcgill/medialounge/accounts"
)

var _ accounts.Repo = (*FakeAccountRepo)(nil)

type FakeAccountRepo struct {
	mu       sync.RWMutex
	nextID   int64
	byEmail  map[string]*accounts.Account
	inserted []*accounts.Account
}

func New() *FakeAccountRepo {
	return &FakeAccountRepo{
		nextID:  1,
		byEmail: make(map[string]*accounts.Account),
	}
}

func (r *FakeAccountRepo) Create(ctx context.Context, email, passwordHash string) (*accounts.Account, error) {
	normalized := accounts.NormalizeEmail(email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[normalized]; exists {
		return nil, accounts.ErrDuplicateEmail
	}

	account := &accounts.Account{
		ID:           r.nextID,
		Email:        normalized,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.nextID++
	r.byEmail[normalized] = account
	r.inserted = append(r.inserted, account)

	return copyAccount(account), nil
}

func (r *FakeAccountRepo) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byEmail[accounts.NormalizeEmail(email)]
	if !ok {
		return nil, accounts.ErrNotFound
	}
	return copyAccount(account), nil
}

func (r *FakeAccountRepo) List(ctx context.Context) ([]*accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*accounts.Account, 0, len(r.inserted))
	for _, account := range r.inserted {
		list = append(list, copyAccount(account))
	}
	return list, nil
}

func (r *FakeAccountRepo) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.inserted {
		if account.ID == id {
			account.PasswordHash = passwordHash
			return nil
		}
	}
	return accounts.ErrNotFound
}

// copyAccount guards the internal records against mutation by callers.
func copyAccount(a *accounts.Account) *accounts.Account {
	c := *a
	return &c
}

// Package authn bridges plaintext credentials to verified identity. It
// owns signup validation, bcrypt hashing and verification, and the session
// lifecycle; account storage itself belongs to the accounts package.
package authn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rmcgill/medialounge/accounts"
	"github.com/rmcgill/medialounge/sessions"
)

// DefaultSessionTTL bounds how long a login stays valid without the
// hosting transport imposing anything shorter.
const DefaultSessionTTL = 12 * time.Hour

// ServiceConfig carries the soft policy knobs.
type ServiceConfig struct {
	MinPasswordLength int
	SessionTTL        time.Duration
}

// Service implements the session authenticator. It reads accounts during
// login and mutates them only during signup and password change.
type Service struct {
	accountRepo accounts.Repo
	sessionRepo sessions.Repo
	minPassword int
	sessionTTL  time.Duration
	nowTime     func() time.Time // injectable for testing
}

// ServiceOption modifies a Service during construction.
type ServiceOption func(*Service)

// WithNowTime sets the clock (primarily for testing).
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

func NewService(accountRepo accounts.Repo, sessionRepo sessions.Repo, cfg ServiceConfig, options ...ServiceOption) (*Service, error) {
	if accountRepo == nil {
		return nil, errors.New("authn.NewService: account repo is required")
	}
	if sessionRepo == nil {
		return nil, errors.New("authn.NewService: session repo is required")
	}

	s := &Service{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		minPassword: cfg.MinPasswordLength,
		sessionTTL:  cfg.SessionTTL,
		nowTime:     time.Now,
	}
	if s.minPassword <= 0 {
		s.minPassword = DefaultMinPasswordLength
	}
	if s.sessionTTL <= 0 {
		s.sessionTTL = DefaultSessionTTL
	}

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

// Signup validates the credentials, hashes the password, and creates the
// account. It does not authenticate: the new user still has to log in.
// The plaintext password never leaves this call.
func (s *Service) Signup(ctx context.Context, email, password string) (*accounts.Account, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password, s.minPassword); err != nil {
		return nil, err
	}

	hash, err := accounts.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account, err := s.accountRepo.Create(ctx, email, hash)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifies the credentials and, on success, establishes a new
// session. A missing account and a wrong password return the identical
// error; the bcrypt compare still runs against a throwaway hash in the
// missing-account case so the two paths cost the same.
func (s *Service) Login(ctx context.Context, email, password string) (*sessions.Session, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			accounts.CheckPasswordHash(password, dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !accounts.CheckPasswordHash(password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	now := s.nowTime()
	session := &sessions.Session{
		ID:        uuid.New().String(),
		AccountID: account.ID,
		Email:     account.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Upsert(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return session, nil
}

// Logout ends a session. Idempotent: logging out an unknown or
// already-ended session is a no-op.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessionRepo.Delete(ctx, sessionID)
}

// CurrentSession resolves a session id to a live session. Expired sessions
// are removed and reported as not found.
func (s *Service) CurrentSession(ctx context.Context, sessionID string) (*sessions.Session, error) {
	if sessionID == "" {
		return nil, sessions.ErrNotFound
	}

	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.nowTime()) {
		_ = s.sessionRepo.Delete(ctx, sessionID)
		return nil, sessions.ErrNotFound
	}
	return session, nil
}

// ChangePassword verifies the current password for the session's account
// and replaces the stored hash.
func (s *Service) ChangePassword(ctx context.Context, sessionID, currentPassword, newPassword string) error {
	session, err := s.CurrentSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := ValidatePassword(newPassword, s.minPassword); err != nil {
		return err
	}

	account, err := s.accountRepo.GetByEmail(ctx, session.Email)
	if err != nil {
		return err
	}
	if !accounts.CheckPasswordHash(currentPassword, account.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := accounts.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.accountRepo.UpdatePasswordHash(ctx, account.ID, hash)
}

// dummyHash is a bcrypt hash of a random throwaway string, used to keep the
// missing-account login path as expensive as a real verification.
var dummyHash = func() string {
	h, err := accounts.HashPassword(uuid.New().String())
	if err != nil {
		panic(err)
	}
	return h
}()

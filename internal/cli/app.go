// Package cli implements the interactive terminal front end. It talks to
// the same account and session stores as the web server, so an account
// created here works in the browser and vice versa.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/rmcgill/medialounge/accounts"
	"github.com/rmcgill/medialounge/accounts/postgres"
	fakeaccountrepo "github.com/rmcgill/medialounge/accounts/repofake"
	"github.com/rmcgill/medialounge/authn"
	"github.com/rmcgill/medialounge/internal/config"
	"github.com/rmcgill/medialounge/media/games"
	"github.com/rmcgill/medialounge/media/music"
	"github.com/rmcgill/medialounge/media/tv"
	"github.com/rmcgill/medialounge/sessions"
)

// App holds the REPL state: the authenticator, the account store for the
// diagnostic listing, the media providers, and the current session.
type App struct {
	authn       *authn.Service
	accountRepo accounts.Repo
	music       *music.Client
	tv          *tv.Client
	games       *games.Catalog
	reader      *bufio.Reader

	session *sessions.Session
}

// NewApp wires the App against the configured stores. The returned cleanup
// function closes whatever connections were opened.
func NewApp(ctx context.Context, c *config.Config) (*App, func(), error) {
	var (
		accountRepo accounts.Repo
		cleanups    []func()
	)

	if c.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, using in-memory account store")
		accountRepo = fakeaccountrepo.New()
	} else {
		db, err := postgres.Open(ctx, c.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("account store: %w", err)
		}
		cleanups = append(cleanups, func() { _ = db.Close() })
		accountRepo = postgres.NewRepository(db)
	}

	var sessionRepo sessions.Repo
	switch c.SessionStore {
	case config.SessionStoreRedis:
		repo, err := sessions.NewRedisRepo(ctx, c.RedisURL)
		if err != nil {
			runCleanups(cleanups)
			return nil, nil, fmt.Errorf("session store: %w", err)
		}
		cleanups = append(cleanups, func() { _ = repo.Close() })
		sessionRepo = repo
	default:
		sessionRepo = sessions.NewInMemoryRepo()
	}

	authnService, err := authn.NewService(accountRepo, sessionRepo, authn.ServiceConfig{
		MinPasswordLength: c.MinPasswordLength,
		SessionTTL:        c.SessionTTL,
	})
	if err != nil {
		runCleanups(cleanups)
		return nil, nil, err
	}

	app := &App{
		authn:       authnService,
		accountRepo: accountRepo,
		music:       music.NewClient(),
		tv:          tv.NewClient(),
		games:       games.NewCatalog(c.GamesDir),
		reader:      bufio.NewReader(os.Stdin),
	}
	return app, func() { runCleanups(cleanups) }, nil
}

func runCleanups(cleanups []func()) {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

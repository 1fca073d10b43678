package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rmcgill/medialounge/accounts"
	"github.com/rmcgill/medialounge/accounts/postgres"
	fakeaccountrepo "github.com/rmcgill/medialounge/accounts/repofake"
	"github.com/rmcgill/medialounge/internal/config"
	"github.com/rmcgill/medialounge/media/games"
	"github.com/rmcgill/medialounge/media/music"
	"github.com/rmcgill/medialounge/media/tv"
	"github.com/rmcgill/medialounge/server"
	"github.com/rmcgill/medialounge/sessions"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatal().Err(err).Msg("Error running server")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("Server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.Load()
	configureLogging(c.Env)
	displayAppname(c.AppName)

	ctx := context.Background()

	accountRepo, cleanupAccounts, err := openAccountStore(ctx, c)
	if err != nil {
		return fmt.Errorf("account store: %w", err)
	}
	defer cleanupAccounts()

	sessionRepo, cleanupSessions, err := openSessionStore(ctx, c)
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}
	defer cleanupSessions()

	srv, err := server.New(c, accountRepo, sessionRepo, server.Media{
		Music: music.NewClient(),
		TV:    tv.NewClient(),
		Games: games.NewCatalog(c.GamesDir),
	})
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: c.Port, Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func openAccountStore(ctx context.Context, c *config.Config) (accounts.Repo, func(), error) {
	if c.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL not set, using in-memory account store")
		return fakeaccountrepo.New(), func() {}, nil
	}

	db, err := postgres.Open(ctx, c.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Msg("Connected to Postgres account store")
	return postgres.NewRepository(db), func() { _ = db.Close() }, nil
}

func openSessionStore(ctx context.Context, c *config.Config) (sessions.Repo, func(), error) {
	switch c.SessionStore {
	case config.SessionStoreRedis:
		repo, err := sessions.NewRedisRepo(ctx, c.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Msg("Connected to Redis session store")
		return repo, func() { _ = repo.Close() }, nil
	case config.SessionStoreMemory:
		return sessions.NewInMemoryRepo(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", c.SessionStore)
	}
}

func configureLogging(env string) {
	if env == "DEV" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func listenAndServe(httpServer *http.Server) {
	log.Info().Str("addr", httpServer.Addr).Msg("Server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

// Package server is the HTTP front end: form-based signup/login/logout,
// session-gated pages, the media browsing pages, and the administrative
// account listing.
package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/rmcgill/medialounge/accounts"
	"github.com/rmcgill/medialounge/authn"
	"github.com/rmcgill/medialounge/internal/config"
	"github.com/rmcgill/medialounge/media/games"
	"github.com/rmcgill/medialounge/media/music"
	"github.com/rmcgill/medialounge/media/tv"
	"github.com/rmcgill/medialounge/sessions"
)

// Media bundles the browse providers the pages use.
type Media struct {
	Music *music.Client
	TV    *tv.Client
	Games *games.Catalog
}

type Server struct {
	env    string
	mux    *http.ServeMux
	routes []string
	config *config.Config

	authn       *authn.Service
	accountRepo accounts.Repo
	media       Media
}

func New(cfg *config.Config, accountRepo accounts.Repo, sessionRepo sessions.Repo, media Media) (*Server, error) {
	authnService, err := authn.NewService(accountRepo, sessionRepo, authn.ServiceConfig{
		MinPasswordLength: cfg.MinPasswordLength,
		SessionTTL:        cfg.SessionTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("server.New: failed to create authenticator: %w", err)
	}

	s := &Server{
		env:         cfg.Env,
		mux:         http.NewServeMux(),
		config:      cfg,
		authn:       authnService,
		accountRepo: accountRepo,
		media:       media,
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)
		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

package server

import (
	"context"
	"net/http"

	"github.com/rmcgill/medialounge/sessions"
)

// SessionCookieName is the cookie carrying the session id.
const SessionCookieName = "ml_session"

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the authenticated *sessions.Session.
const ContextKeySession ContextKey = "session"

// RequireSession validates the session cookie and injects the session into
// the request context. Anonymous or expired visitors are redirected to the
// login page.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
				return
			}

			session, err := s.authn.CurrentSession(r.Context(), cookie.Value)
			if err != nil {
				clearSessionCookie(w)
				http.Redirect(w, r, RouteLogin+"?error=Session+expired", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next(w, r.WithContext(ctx))
		}
	}
}

// sessionFromContext returns the session placed by RequireSession, or nil.
func sessionFromContext(ctx context.Context) *sessions.Session {
	session, _ := ctx.Value(ContextKeySession).(*sessions.Session)
	return session
}

// currentSession resolves the cookie on routes that render differently for
// logged-in users but do not require login.
func (s *Server) currentSession(r *http.Request) *sessions.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	session, err := s.authn.CurrentSession(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return session
}

func setSessionCookie(w http.ResponseWriter, sessionID string, maxAgeSeconds int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

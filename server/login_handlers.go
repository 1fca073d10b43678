package server

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rmcgill/medialounge/authn"
)

// LoginGetHandler displays the login page (GET /login)
func (s *Server) LoginGetHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("login.html")
	if err != nil {
		panic("Failed to parse login template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, s.pageData(r))
	}
}

// LoginPostHandler processes the login form submission. Unknown email and
// wrong password produce the identical message; the difference is not
// observable to the visitor.
func (s *Server) LoginPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")

		session, err := s.authn.Login(r.Context(), email, password)
		if err != nil {
			if errors.Is(err, authn.ErrInvalidCredentials) {
				redirectWithError(w, r, RouteLogin, "Invalid email or password")
				return
			}
			log.Error().Err(err).Msg("login failed")
			redirectWithError(w, r, RouteLogin, "Login failed, please try again")
			return
		}

		setSessionCookie(w, session.ID, int(s.config.SessionTTL.Seconds()))
		http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
	}
}

// LogoutHandler ends the session and clears the cookie. Safe to hit
// without a session; logout is idempotent.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			if err := s.authn.Logout(r.Context(), cookie.Value); err != nil {
				log.Warn().Err(err).Msg("logout: session delete failed")
			}
		}
		clearSessionCookie(w)
		http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
	}
}

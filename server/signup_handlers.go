package server

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/rmcgill/medialounge/accounts"
	"github.com/rmcgill/medialounge/authn"
)

// SignupGetHandler renders the signup page
func (s *Server) SignupGetHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("signup.html")
	if err != nil {
		panic("Failed to parse signup template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, s.pageData(r))
	}
}

// SignupPostHandler handles registration form submission. A successful
// signup redirects to the login page; it does not authenticate.
func (s *Server) SignupPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")

		_, err := s.authn.Signup(r.Context(), email, password)
		if err != nil {
			switch {
			case errors.Is(err, authn.ErrValidation):
				redirectWithError(w, r, RouteSignup, err.Error())
			case errors.Is(err, accounts.ErrDuplicateEmail):
				redirectWithError(w, r, RouteSignup, "An account with that email already exists")
			default:
				log.Error().Err(err).Msg("signup failed")
				redirectWithError(w, r, RouteSignup, "Signup failed, please try again")
			}
			return
		}

		http.Redirect(w, r, RouteLogin+"?notice="+url.QueryEscape("Signup successful. You can now log in."), http.StatusSeeOther)
	}
}

// redirectWithError re-renders a form page with a flash-style error message.
func redirectWithError(w http.ResponseWriter, r *http.Request, route, message string) {
	http.Redirect(w, r, route+"?error="+url.QueryEscape(message), http.StatusSeeOther)
}

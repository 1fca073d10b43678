package server

import (
	"encoding/json"
	"net/http"
)

// PageData is the common template model for UI pages.
type PageData struct {
	AppName string
	Email   string // logged-in user's email, empty for anonymous visitors
	Error   string
	Notice  string
}

func (s *Server) pageData(r *http.Request) PageData {
	data := PageData{
		AppName: s.config.AppName,
		Error:   r.URL.Query().Get("error"),
		Notice:  r.URL.Query().Get("notice"),
	}
	if session := s.currentSession(r); session != nil {
		data.Email = session.Email
	}
	return data
}

// IndexHandler renders the home page
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("index.html")
	if err != nil {
		panic("Failed to parse index template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, s.pageData(r))
	}
}

// DashboardHandler renders the post-login landing page.
func (s *Server) DashboardHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("dashboard.html")
	if err != nil {
		panic("Failed to parse dashboard template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		session := sessionFromContext(r.Context())
		data := PageData{
			AppName: s.config.AppName,
			Email:   session.Email,
			Notice:  r.URL.Query().Get("notice"),
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

// HealthHandler reports liveness.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"service": s.config.AppName,
		})
	}
}

const contentTypeHTML = "text/html; charset=utf-8"

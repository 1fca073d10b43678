package server

import (
	"net/http"

	"github.com/rmcgill/medialounge/media/games"
	"github.com/rmcgill/medialounge/media/music"
	"github.com/rmcgill/medialounge/media/tv"
)

type musicPage struct {
	PageData
	Query   string
	Results []music.Track
}

// MusicHandler renders the track search page. An empty query shows the
// bare search form.
func (s *Server) MusicHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("music.html")
	if err != nil {
		panic("Failed to parse music template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		data := musicPage{
			PageData: s.pageData(r),
			Query:    query,
		}
		if query != "" {
			data.Results = s.media.Music.SearchTracks(r.Context(), query)
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

type tvPage struct {
	PageData
	Query   string
	Results []tv.Channel
}

// TVHandler renders the live TV channel search page.
func (s *Server) TVHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("tv.html")
	if err != nil {
		panic("Failed to parse tv template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		data := tvPage{
			PageData: s.pageData(r),
			Query:    query,
		}
		if query != "" {
			data.Results = s.media.TV.SearchChannels(r.Context(), query)
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

type gamesPage struct {
	PageData
	Games []games.Game
}

// GamesHandler renders the game catalog.
func (s *Server) GamesHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("games.html")
	if err != nil {
		panic("Failed to parse games template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := gamesPage{
			PageData: s.pageData(r),
			Games:    s.media.Games.List(),
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

type playGamePage struct {
	PageData
	Game games.Game
}

// PlayGameHandler renders a single game's embed page. Unknown slugs go
// back to the catalog.
func (s *Server) PlayGameHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("play_game.html")
	if err != nil {
		panic("Failed to parse play game template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")
		game, ok := s.media.Games.Get(slug)
		if !ok {
			redirectWithError(w, r, RouteGames, "Game not found")
			return
		}
		data := playGamePage{
			PageData: s.pageData(r),
			Game:     game,
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

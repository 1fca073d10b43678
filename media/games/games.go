// Package games enumerates locally hosted HTML5 games. Each subdirectory
// of the games directory is one game whose entry point is index.html; a
// fixed external embed rounds out the catalog.
package games

import (
	"fmt"
	"os"
	"strings"
)

// Game describes one playable entry in the catalog.
type Game struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Path     string `json:"path,omitempty"`      // local entry point, e.g. /static/games/snake/index.html
	EmbedURL string `json:"embed_url,omitempty"` // external embed
	Local    bool   `json:"local"`
}

// Catalog lists games from a directory on disk.
type Catalog struct {
	dir string
}

func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// List returns local games in directory order plus the external embed
// entry. A missing games directory is not an error; the catalog is then
// just the external entry.
func (c *Catalog) List() []Game {
	var games []Game

	entries, err := os.ReadDir(c.dir)
	if err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			name := entry.Name()
			games = append(games, Game{
				Slug:  name,
				Title: titleFromSlug(name),
				Path:  fmt.Sprintf("/static/games/%s/index.html", name),
				Local: true,
			})
		}
	}

	games = append(games, Game{
		Slug:     "space-invaders-embed",
		Title:    "Space Invaders (Itch.io embed)",
		EmbedURL: "https://itch.io/embed/123456?linkback=true",
		Local:    false,
	})

	return games
}

// Get returns the game with the given slug, or false if absent.
func (c *Catalog) Get(slug string) (Game, bool) {
	for _, g := range c.List() {
		if g.Slug == slug {
			return g, true
		}
	}
	return Game{}, false
}

// titleFromSlug turns "space_invaders" or "space-invaders" into "Space Invaders".
func titleFromSlug(slug string) string {
	normalized := strings.NewReplacer("_", " ", "-", " ").Replace(slug)
	words := strings.Split(normalized, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

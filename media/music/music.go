// Package music searches for tracks using the iTunes Search API, a keyless
// public JSON endpoint. Provider failures degrade to an empty result list
// so a flaky upstream never breaks page rendering.
package music

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultSearchURL = "https://itunes.apple.com/search"
	defaultLimit     = 12
	requestTimeout   = 10 * time.Second
)

// Track is a simplified search result.
type Track struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Artists    string `json:"artists"`
	PreviewURL string `json:"preview_url,omitempty"`
	PageURL    string `json:"page_url,omitempty"`
}

// Client queries the track search provider.
type Client struct {
	httpClient *http.Client
	searchURL  string
	limit      int
}

// ClientOption modifies a Client during construction.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client (primarily for testing).
func WithHTTPClient(c *http.Client) ClientOption {
	return func(mc *Client) {
		mc.httpClient = c
	}
}

// WithSearchURL points the client at a different endpoint (testing).
func WithSearchURL(u string) ClientOption {
	return func(mc *Client) {
		mc.searchURL = u
	}
}

func NewClient(options ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		searchURL:  defaultSearchURL,
		limit:      defaultLimit,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Results []struct {
		TrackID    int64  `json:"trackId"`
		TrackName  string `json:"trackName"`
		ArtistName string `json:"artistName"`
		PreviewURL string `json:"previewUrl"`
		TrackURL   string `json:"trackViewUrl"`
	} `json:"results"`
}

// SearchTracks returns up to the configured limit of tracks matching the
// query. An empty query or a provider error yields an empty slice, never
// an error surfaced to the page.
func (c *Client) SearchTracks(ctx context.Context, query string) []Track {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	params := url.Values{}
	params.Set("term", query)
	params.Set("media", "music")
	params.Set("entity", "song")
	params.Set("limit", fmt.Sprintf("%d", c.limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		log.Warn().Err(err).Msg("music: building search request failed")
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("music: track search failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("query", query).Msg("music: track search returned non-200")
		return nil
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Warn().Err(err).Msg("music: decoding search response failed")
		return nil
	}

	tracks := make([]Track, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		tracks = append(tracks, Track{
			ID:         fmt.Sprintf("%d", r.TrackID),
			Name:       r.TrackName,
			Artists:    r.ArtistName,
			PreviewURL: r.PreviewURL,
			PageURL:    r.TrackURL,
		})
	}
	return tracks
}

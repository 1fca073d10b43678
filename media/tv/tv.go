// Package tv searches live TV channels using the IPTV-org public API. The
// channel, stream, and country datasets are fetched once and cached for
// the process lifetime, mirroring how rarely they change upstream.
package tv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultChannelsURL  = "https://iptv-org.github.io/api/channels.json"
	defaultStreamsURL   = "https://iptv-org.github.io/api/streams.json"
	defaultCountriesURL = "https://iptv-org.github.io/api/countries.json"

	defaultLimit   = 24
	requestTimeout = 30 * time.Second
)

// Channel is a searchable TV channel with a playable stream.
type Channel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	LogoURL   string `json:"logo_url,omitempty"`
	StreamURL string `json:"stream_url"`
}

type apiChannel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Logo    string `json:"logo"`
}

type apiStream struct {
	Channel string `json:"channel"`
	URL     string `json:"url"`
}

type apiCountry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Client fetches and caches the IPTV-org datasets.
type Client struct {
	httpClient   *http.Client
	channelsURL  string
	streamsURL   string
	countriesURL string
	limit        int

	mu        sync.Mutex
	channels  []apiChannel
	streams   map[string]string // channel id -> first stream URL
	countries map[string]string // country code -> name
}

// ClientOption modifies a Client during construction.
type ClientOption func(*Client)

// WithHTTPClient overrides the HTTP client (primarily for testing).
func WithHTTPClient(c *http.Client) ClientOption {
	return func(tc *Client) {
		tc.httpClient = c
	}
}

// WithEndpoints points the client at different dataset URLs (testing).
func WithEndpoints(channelsURL, streamsURL, countriesURL string) ClientOption {
	return func(tc *Client) {
		tc.channelsURL = channelsURL
		tc.streamsURL = streamsURL
		tc.countriesURL = countriesURL
	}
}

func NewClient(options ...ClientOption) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		channelsURL:  defaultChannelsURL,
		streamsURL:   defaultStreamsURL,
		countriesURL: defaultCountriesURL,
		limit:        defaultLimit,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// SearchChannels returns channels whose name contains the query
// (case-insensitive) and that have at least one known stream. Dataset
// fetch failures degrade to empty results.
func (c *Client) SearchChannels(ctx context.Context, query string) []Channel {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.loadLocked(ctx); err != nil {
		log.Warn().Err(err).Msg("tv: loading IPTV datasets failed")
		return nil
	}

	var results []Channel
	for _, ch := range c.channels {
		if len(results) >= c.limit {
			break
		}
		if !strings.Contains(strings.ToLower(ch.Name), query) {
			continue
		}
		streamURL, ok := c.streams[ch.ID]
		if !ok {
			continue
		}
		country := c.countries[ch.Country]
		if country == "" {
			country = ch.Country
		}
		results = append(results, Channel{
			ID:        ch.ID,
			Name:      ch.Name,
			Country:   country,
			LogoURL:   ch.Logo,
			StreamURL: streamURL,
		})
	}
	return results
}

// loadLocked populates the caches on first use. Callers hold c.mu.
func (c *Client) loadLocked(ctx context.Context) error {
	if c.channels != nil {
		return nil
	}

	var channels []apiChannel
	if err := c.fetchJSON(ctx, c.channelsURL, &channels); err != nil {
		return fmt.Errorf("fetch channels: %w", err)
	}

	var streams []apiStream
	if err := c.fetchJSON(ctx, c.streamsURL, &streams); err != nil {
		return fmt.Errorf("fetch streams: %w", err)
	}

	var countries []apiCountry
	if err := c.fetchJSON(ctx, c.countriesURL, &countries); err != nil {
		return fmt.Errorf("fetch countries: %w", err)
	}

	streamMap := make(map[string]string, len(streams))
	for _, s := range streams {
		if s.Channel == "" || s.URL == "" {
			continue
		}
		if _, exists := streamMap[s.Channel]; !exists {
			streamMap[s.Channel] = s.URL
		}
	}

	countryMap := make(map[string]string, len(countries))
	for _, co := range countries {
		countryMap[co.Code] = co.Name
	}

	c.channels = channels
	c.streams = streamMap
	c.countries = countryMap

	log.Info().
		Int("channels", len(channels)).
		Int("streams", len(streamMap)).
		Msg("tv: IPTV datasets loaded")
	return nil
}

func (c *Client) fetchJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

package cli

import (
	"context"
	"fmt"
	"time"
)

// Music searches tracks and prints them with their preview URLs.
func (a *App) Music(ctx context.Context, query string) error {
	tracks := a.music.SearchTracks(ctx, query)
	if len(tracks) == 0 {
		fmt.Printf("No tracks found for %q\n", query)
		return nil
	}
	for _, t := range tracks {
		fmt.Printf("  %s — %s\n", t.Name, t.Artists)
		if t.PreviewURL != "" {
			fmt.Printf("    preview: %s\n", t.PreviewURL)
		}
	}
	return nil
}

// TV searches live channels and prints their stream URLs.
func (a *App) TV(ctx context.Context, query string) error {
	channels := a.tv.SearchChannels(ctx, query)
	if len(channels) == 0 {
		fmt.Printf("No channels found for %q\n", query)
		return nil
	}
	for _, ch := range channels {
		fmt.Printf("  %s (%s)\n    stream: %s\n", ch.Name, ch.Country, ch.StreamURL)
	}
	return nil
}

// Games prints the game catalog with playable URLs.
func (a *App) Games(ctx context.Context) error {
	for _, g := range a.games.List() {
		url := g.EmbedURL
		if g.Local {
			url = g.Path
		}
		fmt.Printf("  %-30s %s\n", g.Title, url)
	}
	return nil
}

// Accounts prints the account listing: id, email, and creation time.
// Password hashes never leave the store.
func (a *App) Accounts(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return nil
	}

	list, err := a.accountRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	for _, account := range list {
		fmt.Printf("  %4d  %-32s %s\n", account.ID, account.Email, account.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

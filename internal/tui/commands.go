package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/medley/internal/catalog"
	"github.com/drake/medley/internal/domain"
)

// Command factories for async operations

// LoadCategoryCmd loads a category page. Background-refresh results are
// posted onto the fresh channel, never into this command's message.
func LoadCategoryCmd(svc *catalog.Service, category domain.Category, loadMore bool, fresh chan<- FreshPageMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		page, err := svc.GetMediaItems(ctx, category, loadMore, catalog.Options{
			OnFreshData: func(p domain.MediaPage) {
				select {
				case fresh <- FreshPageMsg{Category: category, Page: p}:
				default: // Non-blocking if channel full
				}
			},
		})
		if err != nil {
			return ErrMsg{Err: err, Context: "loading " + string(category)}
		}
		return PageLoadedMsg{Category: category, Page: page, LoadMore: loadMore}
	}
}

// WaitForFreshCmd blocks until a background refresh delivers fresh data.
// Re-issued after every received message to keep the subscription alive.
func WaitForFreshCmd(fresh <-chan FreshPageMsg) tea.Cmd {
	return func() tea.Msg {
		return <-fresh
	}
}

// ResolveURLCmd resolves a display URL for an item
func ResolveURLCmd(svc *catalog.Service, item domain.MediaItem) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		url, err := svc.ResolveSignedURL(ctx, item)
		if err != nil {
			return ErrMsg{Err: err, Context: "resolving URL for " + item.DisplayTitle()}
		}
		return SignedURLMsg{Item: item, URL: url}
	}
}

// SearchCmd runs a local fuzzy search over the cached catalog
func SearchCmd(svc *catalog.SearchService, query string) tea.Cmd {
	return func() tea.Msg {
		return SearchResultsMsg{Query: query, Results: svc.Search(query)}
	}
}

// ClearStatusCmd clears the status bar after a delay
func ClearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

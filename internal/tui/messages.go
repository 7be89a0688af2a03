package tui

import "github.com/drake/medley/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageLoadedMsg signals that a category page has been loaded
type PageLoadedMsg struct {
	Category domain.Category
	Page     domain.MediaPage
	LoadMore bool
}

// FreshPageMsg carries a background-refresh result that differs from
// what was served from cache
type FreshPageMsg struct {
	Category domain.Category
	Page     domain.MediaPage
}

// SignedURLMsg signals that a display URL has been resolved
type SignedURLMsg struct {
	Item domain.MediaItem
	URL  string
}

// SearchResultsMsg signals that local search results are ready
type SearchResultsMsg struct {
	Query   string
	Results []domain.MediaItem
}

// StatusMsg sets a temporary status bar message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

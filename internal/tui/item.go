package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/drake/medley/internal/domain"
)

// listItem adapts a domain.MediaItem to the bubbles list component.
type listItem struct {
	item domain.MediaItem
}

func (i listItem) Title() string { return i.item.DisplayTitle() }

func (i listItem) Description() string {
	parts := make([]string, 0, 3)
	if !i.item.UploadDate.IsZero() {
		parts = append(parts, i.item.UploadDate.Format("2006-01-02"))
	}
	parts = append(parts, i.item.ContentType)
	if size := i.item.FormattedFileSize(); size != "" {
		parts = append(parts, size)
	}
	return strings.Join(parts, " · ")
}

func (i listItem) FilterValue() string { return i.item.DisplayTitle() }

// toListItems wraps media items for display
func toListItems(items []domain.MediaItem) []list.Item {
	out := make([]list.Item, len(items))
	for idx, item := range items {
		out[idx] = listItem{item: item}
	}
	return out
}

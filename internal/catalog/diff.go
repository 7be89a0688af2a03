package catalog

import "github.com/drake/medley/internal/domain"

// HasNewItems reports whether the new list differs from the old one in
// a way worth pushing to the UI. Any length change counts, including
// shrinkage; otherwise a new item is one whose ID is absent from the
// old list. Same-ID field edits are deliberately not detected: the
// identity fields are immutable post-creation, so only existence
// matters for refresh decisions.
func HasNewItems(oldItems, newItems []domain.MediaItem) bool {
	if len(newItems) != len(oldItems) {
		return true
	}
	oldIDs := make(map[string]struct{}, len(oldItems))
	for _, item := range oldItems {
		oldIDs[item.ID] = struct{}{}
	}
	for _, item := range newItems {
		if _, ok := oldIDs[item.ID]; !ok {
			return true
		}
	}
	return false
}

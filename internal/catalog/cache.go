package catalog

import (
	"sync"

	"github.com/drake/medley/internal/domain"
)

// PictureState is the pictures slot content: every item fetched so far
// plus the continuation cursor. An empty NextToken means the paginated
// source is exhausted.
type PictureState struct {
	Items     []domain.MediaItem
	NextToken string
}

// Cache holds the last known snapshot per category slot. Slots start
// empty, are replaced wholesale by successful fetches, and are cleared
// only by explicit invalidation; there is no TTL.
//
// Reads and replacements are atomic with respect to each other, so a
// reader never observes a half-updated slot. Concurrent background
// refreshes for the same slot are not coordinated beyond that:
// last writer wins.
type Cache struct {
	mu        sync.RWMutex
	pictures  *PictureState           // nil = cold
	documents []domain.DocumentRecord // nil = cold
	hasDocs   bool
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Pictures returns the current pictures snapshot, or nil when cold.
// The returned state is a copy; mutating it does not affect the cache.
func (c *Cache) Pictures() *PictureState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.pictures == nil {
		return nil
	}
	items := make([]domain.MediaItem, len(c.pictures.Items))
	copy(items, c.pictures.Items)
	return &PictureState{Items: items, NextToken: c.pictures.NextToken}
}

// SetPictures atomically replaces the pictures slot. The input is
// copied, so the caller may keep using its slice afterwards without
// affecting what readers observe.
func (c *Cache) SetPictures(items []domain.MediaItem, nextToken string) {
	copied := make([]domain.MediaItem, len(items))
	copy(copied, items)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pictures = &PictureState{Items: copied, NextToken: nextToken}
}

// Documents returns the cached raw document list. The second result is
// false when the slot is cold. An empty fetched list is a valid warm
// snapshot, distinct from cold.
func (c *Cache) Documents() ([]domain.DocumentRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.hasDocs {
		return nil, false
	}
	docs := make([]domain.DocumentRecord, len(c.documents))
	copy(docs, c.documents)
	return docs, true
}

// SetDocuments atomically replaces the documents slot. The input is
// copied, same as SetPictures.
func (c *Cache) SetDocuments(docs []domain.DocumentRecord) {
	copied := make([]domain.DocumentRecord, len(docs))
	copy(copied, docs)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.documents = copied
	c.hasDocs = true
}

// Invalidate clears both slots unconditionally.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pictures = nil
	c.documents = nil
	c.hasDocs = false
}

// ResetPictures clears only the pictures slot, rewinding pagination.
func (c *Cache) ResetPictures() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pictures = nil
}

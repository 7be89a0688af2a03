package catalog

import (
	"log/slog"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/drake/medley/internal/domain"
)

// SearchService provides local fuzzy search over the cached catalog.
// It is strictly read-only: queries never trigger fetches, so results
// reflect whatever snapshots the cache currently holds.
type SearchService struct {
	cache  *Cache
	logger *slog.Logger
}

// NewSearchService creates a search service over the given cache.
func NewSearchService(cache *Cache, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{cache: cache, logger: logger}
}

// cachedItems collects every displayable item across all cached slots.
func (s *SearchService) cachedItems() []domain.MediaItem {
	var items []domain.MediaItem
	if pictures := s.cache.Pictures(); pictures != nil {
		items = append(items, pictures.Items...)
	}
	if docs, ok := s.cache.Documents(); ok {
		items = append(items, BuildVideosPage(docs).Items...)
		items = append(items, BuildDocumentsPage(docs).Items...)
	}
	return items
}

// Search ranks cached items against the query by title distance,
// best match first.
func (s *SearchService) Search(query string) []domain.MediaItem {
	if query == "" {
		return nil
	}

	items := s.cachedItems()
	if len(items) == 0 {
		return nil
	}

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.DisplayTitle()
	}

	ranks := fuzzy.RankFindFold(query, titles)
	sort.Sort(ranks)

	results := make([]domain.MediaItem, 0, len(ranks))
	for _, rank := range ranks {
		results = append(results, items[rank.OriginalIndex])
	}

	s.logger.Debug("local search", "query", query, "results", len(results))
	return results
}

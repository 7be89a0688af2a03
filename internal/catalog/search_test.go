package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/medley/internal/domain"
)

func searchCache(t *testing.T) *Cache {
	t.Helper()
	cache := NewCache()
	cache.SetPictures([]domain.MediaItem{
		{ID: "p1", Filename: "sunset-beach.jpg", Title: "Sunset at the beach", Category: domain.CategoryPictures},
		{ID: "p2", Filename: "mountain.jpg", Category: domain.CategoryPictures},
	}, "cursor-1")
	cache.SetDocuments([]domain.DocumentRecord{
		{
			ID: "v1", Filename: "beach-volleyball.mp4",
			Type: "media", MediaType: "video", Status: statusIndexed,
			CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "d1", Filename: "quarterly-report.pdf",
			Type: "document", Status: statusIndexed,
			CreatedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		},
	})
	return cache
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := NewSearchService(searchCache(t), nil)
	assert.Nil(t, svc.Search(""))
}

func TestSearchColdCache(t *testing.T) {
	svc := NewSearchService(NewCache(), nil)
	assert.Nil(t, svc.Search("beach"))
}

func TestSearchSpansAllCategories(t *testing.T) {
	svc := NewSearchService(searchCache(t), nil)

	results := svc.Search("beach")

	ids := make([]string, len(results))
	for i, item := range results {
		ids[i] = item.ID
	}
	assert.ElementsMatch(t, []string{"p1", "v1"}, ids)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	svc := NewSearchService(searchCache(t), nil)

	results := svc.Search("SUNSET")

	require.Len(t, results, 1)
	assert.Equal(t, "p1", results[0].ID)
}

func TestSearchMatchesDisplayTitle(t *testing.T) {
	// p2 has no title, so its filename is the search target
	svc := NewSearchService(searchCache(t), nil)

	results := svc.Search("mountain")

	require.Len(t, results, 1)
	assert.Equal(t, "p2", results[0].ID)
}

func TestSearchBestMatchFirst(t *testing.T) {
	cache := NewCache()
	cache.SetPictures([]domain.MediaItem{
		{ID: "far", Filename: "vacation-photos-from-the-beach-2024.jpg"},
		{ID: "near", Filename: "beach.jpg"},
	}, "")
	svc := NewSearchService(cache, nil)

	results := svc.Search("beach")

	require.Len(t, results, 2)
	assert.Equal(t, "near", results[0].ID, "closer title ranks first")
}

func TestSearchNoMatches(t *testing.T) {
	svc := NewSearchService(searchCache(t), nil)
	assert.Empty(t, svc.Search("zzzzzz"))
}

package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/medley/internal/domain"
)

func indexedDoc(id, filename string) domain.DocumentRecord {
	return domain.DocumentRecord{
		ID:       id,
		Filename: filename,
		Type:     "document",
		Status:   statusIndexed,
	}
}

func TestEligibleDocumentsStatusFilter(t *testing.T) {
	docs := []domain.DocumentRecord{
		indexedDoc("a", "kept.pdf"),
		{ID: "b", Filename: "pending.pdf", Type: "document", Status: "PROCESSING"},
		{ID: "c", Filename: "failed.pdf", Type: "document", Status: "FAILED"},
	}

	eligible := EligibleDocuments(docs)

	require.Len(t, eligible, 1)
	assert.Equal(t, "a", eligible[0].ID)
}

func TestEligibleDocumentsLetterPattern(t *testing.T) {
	tests := []struct {
		filename string
		excluded bool
	}{
		{"2024-01-15_notes.md", true},
		{"2024-01-15-report-final.pdf", true},
		{"2024-01-15.pdf", true},
		{"2024-01-15.letter.md", true},
		{"report-2024-01-15.pdf", false}, // date must be at filename start
		{"2024-01-15_notes.txt", false},  // only .md and .pdf are letters
		{"2024-1-15_notes.md", false},    // two-digit month required
		{"notes.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			eligible := EligibleDocuments([]domain.DocumentRecord{indexedDoc("x", tt.filename)})
			if tt.excluded {
				assert.Empty(t, eligible)
			} else {
				assert.Len(t, eligible, 1)
			}
		})
	}
}

func TestVideoClassification(t *testing.T) {
	docs := []domain.DocumentRecord{
		{ID: "tagged", Filename: "clip.bin", Type: "media", MediaType: "video", Status: statusIndexed},
		{ID: "by-ext", Filename: "raw-footage.MP4", Type: "document", Status: statusIndexed},
		{ID: "mkv", Filename: "movie.mkv", Type: "document", Status: statusIndexed},
		{ID: "plain", Filename: "report.pdf", Type: "document", Status: statusIndexed},
	}

	videos := BuildVideosPage(docs)

	ids := make([]string, 0, len(videos.Items))
	for _, item := range videos.Items {
		ids = append(ids, item.ID)
	}
	assert.ElementsMatch(t, []string{"tagged", "by-ext", "mkv"}, ids)
	assert.False(t, videos.HasMore)

	for _, item := range videos.Items {
		assert.Equal(t, domain.CategoryVideos, item.Category)
	}
}

func TestDocumentClassificationExcludesVideos(t *testing.T) {
	docs := []domain.DocumentRecord{
		{ID: "doc", Filename: "report.pdf", Type: "document", Status: statusIndexed},
		{ID: "video-named", Filename: "talk.mp4", Type: "document", Status: statusIndexed},
		{ID: "media-tagged", Filename: "thing.bin", Type: "document", MediaType: "audio", Status: statusIndexed},
		{ID: "wrong-type", Filename: "other.pdf", Type: "media", Status: statusIndexed},
	}

	page := BuildDocumentsPage(docs)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "doc", page.Items[0].ID)
	assert.Equal(t, domain.CategoryDocuments, page.Items[0].Category)
}

func TestVideosAndDocumentsMutuallyExclusive(t *testing.T) {
	// A .mp4 with no media-type tag is a video, never a document
	docs := []domain.DocumentRecord{
		{ID: "v", Filename: "untagged.mp4", Type: "document", Status: statusIndexed},
	}

	videos := BuildVideosPage(docs)
	documents := BuildDocumentsPage(docs)

	require.Len(t, videos.Items, 1)
	assert.Empty(t, documents.Items)
}

func TestViewsSortedDescending(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 2, d, 0, 0, 0, 0, time.UTC)
	}
	docs := []domain.DocumentRecord{
		{ID: "old", Filename: "old.pdf", Type: "document", Status: statusIndexed, CreatedAt: day(1)},
		{ID: "new", Filename: "new.pdf", Type: "document", Status: statusIndexed, CreatedAt: day(9)},
		{ID: "mid", Filename: "mid.pdf", Type: "document", Status: statusIndexed, CreatedAt: day(5)},
	}

	page := BuildDocumentsPage(docs)

	require.Len(t, page.Items, 3)
	assert.Equal(t, []string{"new", "mid", "old"},
		[]string{page.Items[0].ID, page.Items[1].ID, page.Items[2].ID})
}

package catalog

import (
	"regexp"

	"github.com/drake/medley/internal/domain"
)

// statusIndexed is the only document status eligible for display.
const statusIndexed = "INDEXED"

var (
	// datedLetterPattern matches system-generated letter artifacts:
	// a date at the start of the filename, an optional separator plus
	// free text, and a .md or .pdf extension.
	datedLetterPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(?:[_\-.].+)?\.(?:md|pdf)$`)

	// videoFilePattern is the extension fallback for records whose
	// media-type tags are missing or unreliable.
	videoFilePattern = regexp.MustCompile(`(?i)\.(?:mp4|webm|mov|avi|mkv)$`)
)

// EligibleDocuments filters the raw document list down to records that
// may appear in any view: indexed status only, with system-generated
// dated letter files excluded entirely.
func EligibleDocuments(docs []domain.DocumentRecord) []domain.DocumentRecord {
	eligible := make([]domain.DocumentRecord, 0, len(docs))
	for _, d := range docs {
		if d.Status != statusIndexed {
			continue
		}
		if datedLetterPattern.MatchString(d.Filename) {
			continue
		}
		eligible = append(eligible, d)
	}
	return eligible
}

// isVideo classifies a record as video when its type tags mark it
// explicitly, or when the filename carries a video extension.
func isVideo(d domain.DocumentRecord) bool {
	if d.Type == "media" && d.MediaType == "video" {
		return true
	}
	return videoFilePattern.MatchString(d.Filename)
}

// isDocument classifies a record as a plain document. The negative
// filename check keeps the videos and documents views mutually
// exclusive without a third classification pass.
func isDocument(d domain.DocumentRecord) bool {
	return d.Type == "document" && d.MediaType == "" && !videoFilePattern.MatchString(d.Filename)
}

// BuildVideosPage computes the videos view over a raw document list.
func BuildVideosPage(docs []domain.DocumentRecord) domain.MediaPage {
	items := make([]domain.MediaItem, 0)
	for _, d := range EligibleDocuments(docs) {
		if isVideo(d) {
			items = append(items, itemFromDocument(d, domain.CategoryVideos))
		}
	}
	return domain.MediaPage{Items: SortByDate(items), HasMore: false}
}

// BuildDocumentsPage computes the documents view over a raw document list.
func BuildDocumentsPage(docs []domain.DocumentRecord) domain.MediaPage {
	items := make([]domain.MediaItem, 0)
	for _, d := range EligibleDocuments(docs) {
		if isDocument(d) {
			items = append(items, itemFromDocument(d, domain.CategoryDocuments))
		}
	}
	return domain.MediaPage{Items: SortByDate(items), HasMore: false}
}

// buildDocumentView dispatches to the right view builder for the category.
func buildDocumentView(category domain.Category, docs []domain.DocumentRecord) domain.MediaPage {
	if category == domain.CategoryVideos {
		return BuildVideosPage(docs)
	}
	return BuildDocumentsPage(docs)
}

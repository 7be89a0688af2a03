package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/drake/medley/internal/domain"
)

// fallbackContentType is used when the extension is unknown or missing.
const fallbackContentType = "application/octet-stream"

// contentTypes maps lowercase filename extensions to MIME types.
var contentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"mov":  "video/quicktime",
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"txt":  "text/plain",
	"md":   "text/markdown",
}

// InferContentType determines a MIME type from the filename extension.
// Pure and deterministic: the same filename always yields the same type.
func InferContentType(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return fallbackContentType
	}
	ext := strings.ToLower(filename[idx+1:])
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return fallbackContentType
}

// itemFromImage normalizes a remote image record into a display item.
// Pictures are displayed via their thumbnail, so the signed URL defaults
// to the thumbnail URL when one exists.
func itemFromImage(img domain.ImageRecord) domain.MediaItem {
	contentType := img.ContentType
	if contentType == "" {
		contentType = InferContentType(img.Filename)
	}
	return domain.MediaItem{
		ID:          img.ID,
		Filename:    img.Filename,
		Title:       img.Filename,
		Description: img.Caption,
		UploadDate:  img.CreatedAt,
		FileSize:    img.FileSize,
		ContentType: contentType,
		ThumbURL:    img.ThumbnailURL,
		SignedURL:   img.ThumbnailURL,
		Category:    domain.CategoryPictures,
	}
}

// itemFromDocument normalizes a remote document record into a display
// item for the given category. Document originals require a signed
// fetch, so the signed URL is always left empty for on-demand resolution.
func itemFromDocument(doc domain.DocumentRecord, category domain.Category) domain.MediaItem {
	return domain.MediaItem{
		ID:          doc.ID,
		Filename:    doc.Filename,
		Title:       doc.Filename,
		UploadDate:  doc.CreatedAt,
		FileSize:    0,
		ContentType: InferContentType(doc.Filename),
		ThumbURL:    doc.PreviewURL,
		SignedURL:   "",
		Category:    category,
	}
}

// SortByDate orders items descending by upload date, in place, and
// returns the slice. The sort is stable: equal timestamps keep their
// original relative order.
func SortByDate(items []domain.MediaItem) []domain.MediaItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UploadDate.After(items[j].UploadDate)
	})
	return items
}

// NewItemFromSearch constructs a display-ready item for content sourced
// outside the normal catalog (e.g. a search hit), stamped with the
// current time. It never touches the cache.
func NewItemFromSearch(id, filename, _ string, category domain.Category, description string) domain.MediaItem {
	return domain.MediaItem{
		ID:          id,
		Filename:    filename,
		Title:       filename,
		Description: description,
		UploadDate:  time.Now(),
		FileSize:    0,
		ContentType: InferContentType(filename),
		Category:    category,
	}
}

package domain

import (
	"fmt"
	"time"
)

// Category identifies which catalog view a media item belongs to.
// It is fixed at creation and never mutated.
type Category string

const (
	CategoryPictures  Category = "pictures"
	CategoryVideos    Category = "videos"
	CategoryDocuments Category = "documents"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPictures, CategoryVideos, CategoryDocuments:
		return true
	}
	return false
}

// MediaItem is the uniform display record served to the UI layer,
// regardless of which remote record shape it was normalized from.
type MediaItem struct {
	ID          string    // Opaque stable identifier, unique within a category
	Filename    string    // Original filename
	Title       string    // Display title (defaults to filename)
	Description string    // Optional caption/summary
	UploadDate  time.Time // Used for ordering (descending)
	FileSize    int64     // Bytes, 0 if unknown
	ContentType string    // MIME type, inferred from filename if absent
	ThumbURL    string    // Optional thumbnail image URL
	SignedURL   string    // Non-empty means ready to display without resolution
	Category    Category
}

// DisplayTitle returns the title, falling back to the filename.
func (m MediaItem) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Filename
}

// NeedsResolution reports whether the item requires a presigned URL
// before it can be displayed.
func (m MediaItem) NeedsResolution() bool {
	return m.SignedURL == ""
}

// FormattedFileSize returns the file size in a human-readable format.
func (m MediaItem) FormattedFileSize() string {
	if m.FileSize <= 0 {
		return ""
	}
	const (
		gb = 1024 * 1024 * 1024
		mb = 1024 * 1024
		kb = 1024
	)
	switch {
	case m.FileSize >= gb:
		return fmt.Sprintf("%.1f GB", float64(m.FileSize)/float64(gb))
	case m.FileSize >= mb:
		return fmt.Sprintf("%.1f MB", float64(m.FileSize)/float64(mb))
	default:
		return fmt.Sprintf("%d KB", (m.FileSize+kb-1)/kb)
	}
}

// MediaPage is a result envelope for one catalog read.
// Items are always ordered descending by UploadDate. HasMore is only
// meaningful for the pictures category, the sole paginated source.
type MediaPage struct {
	Items   []MediaItem
	HasMore bool
}

// ImageRecord is a normalized remote image record from the indexing API.
type ImageRecord struct {
	ID           string
	Filename     string
	S3URI        string // Storage URI of the original, e.g. "s3://bucket/key"
	ThumbnailURL string
	Caption      string
	ContentType  string
	FileSize     int64
	CreatedAt    time.Time
}

// DocumentRecord is a normalized remote document record. Both the videos
// and documents views are computed from a single list of these.
type DocumentRecord struct {
	ID         string
	Filename   string
	Type       string // "document" or "media"
	MediaType  string // e.g. "video"; empty when the source omits it
	InputS3URI string // Storage URI of the ingested original
	PreviewURL string
	Status     string // Only "INDEXED" records are eligible for display
	CreatedAt  time.Time
}

// ImagePage is one page of image records plus the continuation cursor.
// An empty NextToken means the source is exhausted.
type ImagePage struct {
	Items     []ImageRecord
	NextToken string
}

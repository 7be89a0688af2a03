package ragstack

import (
	"time"

	"github.com/drake/medley/internal/domain"
)

// MapImage converts a wire image record to a domain record.
func MapImage(img Image) domain.ImageRecord {
	return domain.ImageRecord{
		ID:           img.ImageID,
		Filename:     img.Filename,
		S3URI:        img.S3URI,
		ThumbnailURL: img.ThumbnailURL,
		Caption:      img.Caption,
		ContentType:  img.ContentType,
		FileSize:     img.FileSize,
		CreatedAt:    parseTimestamp(img.CreatedAt),
	}
}

// MapImagePage converts a paginated image result. A null cursor maps to
// the empty string, meaning the source is exhausted.
func MapImagePage(conn ImageConnection) domain.ImagePage {
	page := domain.ImagePage{
		Items: make([]domain.ImageRecord, 0, len(conn.Items)),
	}
	for _, img := range conn.Items {
		page.Items = append(page.Items, MapImage(img))
	}
	if conn.NextToken != nil {
		page.NextToken = *conn.NextToken
	}
	return page
}

// MapDocuments converts wire document records to domain records.
func MapDocuments(docs []Document) []domain.DocumentRecord {
	records := make([]domain.DocumentRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, domain.DocumentRecord{
			ID:         d.DocumentID,
			Filename:   d.Filename,
			Type:       d.Type,
			MediaType:  d.MediaType,
			InputS3URI: d.InputS3URI,
			PreviewURL: d.PreviewURL,
			Status:     d.Status,
			CreatedAt:  parseTimestamp(d.CreatedAt),
		})
	}
	return records
}

// parseTimestamp parses an ISO-8601 timestamp, returning the zero time
// for malformed input so a bad record sorts last rather than failing
// the whole page.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

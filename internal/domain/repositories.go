package domain

import "context"

// CatalogRepository provides read access to the remote content index.
// Implemented by the ragstack client.
type CatalogRepository interface {
	// ListImages returns one page of image records. An empty nextToken
	// requests the first page; the returned page carries the cursor for
	// the next one, empty when the source is exhausted.
	ListImages(ctx context.Context, limit int, nextToken string) (ImagePage, error)

	// ListDocuments returns the full, unpaginated document list.
	// No eligibility filtering is applied here; that is the catalog
	// layer's concern.
	ListDocuments(ctx context.Context) ([]DocumentRecord, error)

	// GetImage returns a single image record by ID, or nil if absent.
	// All failures are swallowed and reported as an absent result.
	GetImage(ctx context.Context, imageID string) *ImageRecord
}

// URLSigner resolves a storage key to a time-limited download URL via
// the authenticated backend proxy.
type URLSigner interface {
	PresignedURL(ctx context.Context, key string) (string, error)
}

// TokenProvider supplies the bearer credential for authenticated proxy
// requests. Token acquisition and refresh live outside this module.
type TokenProvider interface {
	// Token returns the current bearer token, or "" when no valid
	// session exists.
	Token() string
}

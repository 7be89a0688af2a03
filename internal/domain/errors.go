package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrNotConfigured indicates the remote API endpoint or key is missing
	ErrNotConfigured = errors.New("catalog API is not configured")

	// ErrAuthRequired indicates no valid credential is available for a
	// signed-URL request
	ErrAuthRequired = errors.New("not authenticated")

	// ErrServerOffline indicates the catalog API is unreachable
	ErrServerOffline = errors.New("catalog API is unreachable")

	// ErrItemNotFound indicates the referenced item has no backing record
	ErrItemNotFound = errors.New("media item not found")

	// ErrUnknownCategory indicates a category outside the known set
	ErrUnknownCategory = errors.New("unknown media category")
)

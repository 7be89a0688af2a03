package ragstack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/drake/medley/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Medley/1.0"
)

// GraphQL documents for the three read operations
const (
	listImagesQuery = `query ListImages($limit: Int, $nextToken: String) {
  listImages(limit: $limit, nextToken: $nextToken) {
    items { imageId filename s3Uri thumbnailUrl caption contentType fileSize createdAt }
    nextToken
  }
}`

	listDocumentsQuery = `query {
  listDocuments {
    items { documentId filename type mediaType inputS3Uri previewUrl status createdAt }
  }
}`

	getImageQuery = `query GetImage($imageId: ID!) {
  getImage(imageId: $imageId) {
    imageId filename s3Uri thumbnailUrl caption contentType fileSize createdAt
  }
}`
)

// Client implements domain.CatalogRepository against the RAGStack
// GraphQL endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new catalog API client. The endpoint and API key
// are required; a missing value is a configuration failure reported
// before any network I/O.
func NewClient(endpoint, apiKey string, logger *slog.Logger) (*Client, error) {
	if endpoint == "" || apiKey == "" {
		return nil, domain.ErrNotConfigured
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}, nil
}

// doQuery performs an authenticated GraphQL request and returns the
// data payload. Query-level errors are surfaced as Go errors.
func (c *Client) doQuery(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	payload, err := json.Marshal(Request{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog query", "url", c.endpoint, "bytes", len(payload))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, domain.ErrAuthRequired
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var gql Response
	if err := json.Unmarshal(body, &gql); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(gql.Errors) > 0 {
		return nil, fmt.Errorf("query error: %s", gql.Errors[0].Message)
	}

	return gql.Data, nil
}

// ListImages returns one page of image records. An empty nextToken
// requests the first page.
func (c *Client) ListImages(ctx context.Context, limit int, nextToken string) (domain.ImagePage, error) {
	variables := map[string]any{"limit": limit}
	if nextToken != "" {
		variables["nextToken"] = nextToken
	}

	data, err := c.doQuery(ctx, listImagesQuery, variables)
	if err != nil {
		return domain.ImagePage{}, err
	}

	var parsed listImagesData
	if err := json.Unmarshal(data, &parsed); err != nil {
		return domain.ImagePage{}, fmt.Errorf("failed to parse image list: %w", err)
	}

	return MapImagePage(parsed.ListImages), nil
}

// ListDocuments returns the full document list, unfiltered.
func (c *Client) ListDocuments(ctx context.Context) ([]domain.DocumentRecord, error) {
	data, err := c.doQuery(ctx, listDocumentsQuery, nil)
	if err != nil {
		return nil, err
	}

	var parsed listDocumentsData
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse document list: %w", err)
	}

	return MapDocuments(parsed.ListDocuments.Items), nil
}

// GetImage returns a single image record by ID. All failures, protocol
// or transport, are swallowed and reported as an absent result.
func (c *Client) GetImage(ctx context.Context, imageID string) *domain.ImageRecord {
	data, err := c.doQuery(ctx, getImageQuery, map[string]any{"imageId": imageID})
	if err != nil {
		c.logger.Debug("get image failed", "imageID", imageID, "error", err)
		return nil
	}

	var parsed getImageData
	if err := json.Unmarshal(data, &parsed); err != nil {
		c.logger.Debug("get image parse failed", "imageID", imageID, "error", err)
		return nil
	}
	if parsed.GetImage == nil {
		return nil
	}

	record := MapImage(*parsed.GetImage)
	return &record
}

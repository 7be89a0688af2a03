// Package presign resolves storage keys to time-limited download URLs
// through the authenticated backend proxy.
package presign

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/drake/medley/internal/domain"
)

const defaultTimeout = 15 * time.Second

// Client implements domain.URLSigner against the download proxy.
// Every request requires a valid bearer credential from the token
// provider; its absence is reported before any network call.
type Client struct {
	baseURL    string
	bucket     string
	tokens     domain.TokenProvider
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new presigned-URL proxy client.
func NewClient(baseURL, bucket string, tokens domain.TokenProvider, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, domain.ErrNotConfigured
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		bucket:  bucket,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}, nil
}

// PresignedURL requests a temporary download URL for a storage key.
func (c *Client) PresignedURL(ctx context.Context, key string) (string, error) {
	token := c.tokens.Token()
	if token == "" {
		return "", domain.ErrAuthRequired
	}

	query := url.Values{}
	query.Set("key", key)
	query.Set("bucket", c.bucket)
	reqURL := fmt.Sprintf("%s/download/presigned-url?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	c.logger.Debug("presign request", "key", key, "bucket", c.bucket)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("presign request failed", "error", err)
		return "", domain.ErrServerOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", domain.ErrAuthRequired
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("presign request error", "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("failed to get download URL: status %d", resp.StatusCode)
	}

	var parsed struct {
		DownloadURL string `json:"downloadUrl"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if parsed.DownloadURL == "" {
		return "", fmt.Errorf("proxy returned empty download URL")
	}

	return parsed.DownloadURL, nil
}

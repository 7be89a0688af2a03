// Package catalog implements the client-side media catalog: it fetches,
// normalizes, paginates, and caches three categories of media under a
// stale-while-revalidate policy.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/drake/medley/internal/domain"
)

const defaultPageSize = 50

// Options carries per-call orchestration options.
type Options struct {
	// OnFreshData enables stale-while-revalidate: when a cache exists
	// the call returns it immediately and a background refresh invokes
	// this callback only if the refreshed data is materially different.
	OnFreshData func(domain.MediaPage)
}

// Service is the public entry point for catalog reads. It decides per
// call whether to serve from cache, fetch synchronously, or serve stale
// while refreshing in the background.
//
// Background refreshes are fire-and-forget: their failures are logged
// and swallowed, never surfaced through the original call's result.
type Service struct {
	repo     domain.CatalogRepository
	signer   domain.URLSigner
	cache    *Cache
	pageSize int
	logger   *slog.Logger
}

// NewService creates a new catalog service with an empty (cold) cache.
func NewService(repo domain.CatalogRepository, signer domain.URLSigner, pageSize int, logger *slog.Logger) *Service {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:     repo,
		signer:   signer,
		cache:    NewCache(),
		pageSize: pageSize,
		logger:   logger,
	}
}

// Cache exposes the service's cache for read-only collaborators
// (e.g. local search).
func (s *Service) Cache() *Cache {
	return s.cache
}

// GetMediaItems returns a page of media for the category.
//
// Pictures use true server-side pagination, so loadMore always hits the
// network with the cached cursor. Videos and documents are both views
// over one full-list fetch, sharing a single slot and a single refresh.
func (s *Service) GetMediaItems(ctx context.Context, category domain.Category, loadMore bool, opts Options) (domain.MediaPage, error) {
	if !category.Valid() {
		return domain.MediaPage{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	if category == domain.CategoryPictures {
		return s.getPictures(ctx, loadMore, opts)
	}
	return s.getDocumentView(ctx, category, opts)
}

func (s *Service) getPictures(ctx context.Context, loadMore bool, opts Options) (domain.MediaPage, error) {
	if cached := s.cache.Pictures(); cached != nil {
		// Load more: there is no page 2 in the cache, always fetch
		if loadMore {
			page, err := s.repo.ListImages(ctx, s.pageSize, cached.NextToken)
			if err != nil {
				s.logger.Error("failed to load more pictures", "error", err)
				return domain.MediaPage{}, err
			}

			items := cached.Items
			for _, img := range page.Items {
				items = append(items, itemFromImage(img))
			}
			items = SortByDate(items)
			s.cache.SetPictures(items, page.NextToken)

			s.logger.Debug("loaded picture page", "added", len(page.Items), "total", len(items))
			return domain.MediaPage{
				Items:   items,
				HasMore: page.NextToken != "",
			}, nil
		}

		// Serve stale, revalidate in the background
		if opts.OnFreshData != nil {
			result := domain.MediaPage{
				Items:   SortByDate(cached.Items),
				HasMore: cached.NextToken != "",
			}
			go s.refreshPictures(opts.OnFreshData)
			return result, nil
		}
	}

	// Cold (or warm with no refresh callback): fetch page one fresh
	page, err := s.repo.ListImages(ctx, s.pageSize, "")
	if err != nil {
		s.logger.Error("failed to fetch pictures", "error", err)
		return domain.MediaPage{}, err
	}

	items := make([]domain.MediaItem, 0, len(page.Items))
	for _, img := range page.Items {
		items = append(items, itemFromImage(img))
	}
	items = SortByDate(items)
	s.cache.SetPictures(items, page.NextToken)

	s.logger.Info("fetched pictures", "count", len(items), "hasMore", page.NextToken != "")
	return domain.MediaPage{
		Items:   items,
		HasMore: page.NextToken != "",
	}, nil
}

// refreshPictures fetches page one fresh and replaces the slot only if
// the result is materially different from what is cached at comparison
// time. Failures are logged and swallowed.
func (s *Service) refreshPictures(onFreshData func(domain.MediaPage)) {
	page, err := s.repo.ListImages(context.Background(), s.pageSize, "")
	if err != nil {
		s.logger.Warn("background refresh failed", "category", domain.CategoryPictures, "error", err)
		return
	}

	fresh := make([]domain.MediaItem, 0, len(page.Items))
	for _, img := range page.Items {
		fresh = append(fresh, itemFromImage(img))
	}
	fresh = SortByDate(fresh)

	var current []domain.MediaItem
	if cached := s.cache.Pictures(); cached != nil {
		current = cached.Items
	}

	if !HasNewItems(current, fresh) {
		return
	}

	s.cache.SetPictures(fresh, page.NextToken)
	s.logger.Debug("picture refresh has new items", "count", len(fresh))
	onFreshData(domain.MediaPage{
		Items:   fresh,
		HasMore: page.NextToken != "",
	})
}

func (s *Service) getDocumentView(ctx context.Context, category domain.Category, opts Options) (domain.MediaPage, error) {
	// Serve stale, revalidate in the background
	if docs, ok := s.cache.Documents(); ok && opts.OnFreshData != nil {
		result := buildDocumentView(category, docs)
		go s.refreshDocuments(category, opts.OnFreshData)
		return result, nil
	}

	// Cold (or warm with no refresh callback): fetch the full list
	docs, err := s.repo.ListDocuments(ctx)
	if err != nil {
		s.logger.Error("failed to fetch documents", "error", err)
		return domain.MediaPage{}, err
	}
	s.cache.SetDocuments(docs)

	s.logger.Info("fetched documents", "count", len(docs), "category", category)
	return buildDocumentView(category, docs), nil
}

// refreshDocuments fetches the full document list fresh and compares
// category views, not raw lists: the cached view is recomputed at
// comparison time since the slot may have moved underneath. On novelty
// the whole slot is replaced, covering both views in one refresh.
func (s *Service) refreshDocuments(category domain.Category, onFreshData func(domain.MediaPage)) {
	freshDocs, err := s.repo.ListDocuments(context.Background())
	if err != nil {
		s.logger.Warn("background refresh failed", "category", category, "error", err)
		return
	}

	freshPage := buildDocumentView(category, freshDocs)

	cachedDocs, _ := s.cache.Documents()
	cachedPage := buildDocumentView(category, cachedDocs)

	if !HasNewItems(cachedPage.Items, freshPage.Items) {
		return
	}

	s.cache.SetDocuments(freshDocs)
	s.logger.Debug("document refresh has new items", "category", category, "count", len(freshPage.Items))
	onFreshData(freshPage)
}

// InvalidateCache clears both cache slots unconditionally. An in-flight
// background refresh is not aborted; if one completes afterwards it
// repopulates the slot, last writer wins.
func (s *Service) InvalidateCache() {
	s.cache.Invalidate()
	s.logger.Info("cleared media cache")
}

// ResetPagination clears only the pictures slot, rewinding its cursor.
func (s *Service) ResetPagination() {
	s.cache.ResetPictures()
	s.logger.Debug("reset picture pagination")
}

// s3URIPattern extracts the storage key from an s3://bucket/key URI.
var s3URIPattern = regexp.MustCompile(`^s3://[^/]+/(.+)$`)

// s3URIToKey strips the scheme and bucket from a storage URI, returning
// the input unchanged when it does not look like an S3 URI.
func s3URIToKey(uri string) string {
	if m := s3URIPattern.FindStringSubmatch(uri); m != nil {
		return m[1]
	}
	return uri
}

// ResolveSignedURL returns a display URL for the item. Items that
// already carry one are returned as-is without any network call.
// Resolution results are never written back into the cache: signed URLs
// are short-lived and must not be cached long-term.
func (s *Service) ResolveSignedURL(ctx context.Context, item domain.MediaItem) (string, error) {
	if item.SignedURL != "" {
		return item.SignedURL, nil
	}

	docs, ok := s.cache.Documents()
	if !ok {
		fetched, err := s.repo.ListDocuments(ctx)
		if err != nil {
			return "", err
		}
		docs = fetched
	}

	var record *domain.DocumentRecord
	for i := range docs {
		if docs[i].ID == item.ID {
			record = &docs[i]
			break
		}
	}
	if record == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrItemNotFound, item.ID)
	}

	key := s3URIToKey(record.InputS3URI)
	url, err := s.signer.PresignedURL(ctx, key)
	if err != nil {
		s.logger.Error("failed to resolve signed URL", "itemID", item.ID, "error", err)
		return "", err
	}
	return url, nil
}

// GetImageByID returns a single image record, or nil when absent or on
// any failure. Used for search-result thumbnails.
func (s *Service) GetImageByID(ctx context.Context, imageID string) *domain.ImageRecord {
	return s.repo.GetImage(ctx, imageID)
}

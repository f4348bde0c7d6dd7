// ABOUTME: Content service fetches remote article and place records
// ABOUTME: Applies the preview pipeline and enrichment before records leave the core

package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"memoria-app-api/core/domain"
	coreerrors "memoria-app-api/core/errors"
	"memoria-app-api/core/interfaces"
	"memoria-app-api/core/preview"
)

const contentCacheTTL = 1 * time.Hour

// Config holds the remote endpoints and preview settings for the service
type Config struct {
	// ArticlesURL is the JSON endpoint serving the article list
	ArticlesURL string

	// PlacesURL is the JSON endpoint serving the place list
	PlacesURL string

	// WordLimit bounds preview length; non-positive falls back to the default
	WordLimit int
}

// Service fetches article and place content and prepares it for display
type Service struct {
	deps     interfaces.Dependencies
	cfg      Config
	pipeline *preview.Pipeline
	metadata interfaces.MetadataService
	colors   interfaces.ThumbnailColorService
}

// NewService creates a content service instance
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	return &Service{
		deps:     deps,
		cfg:      cfg,
		pipeline: preview.NewPipeline(cfg.WordLimit),
	}
}

// SetMetadataService sets the optional metadata extraction service
func (s *Service) SetMetadataService(svc interfaces.MetadataService) {
	s.metadata = svc
}

// SetThumbnailColorService sets the optional color extraction service
func (s *Service) SetThumbnailColorService(svc interfaces.ThumbnailColorService) {
	s.colors = svc
}

// ListArticles fetches the article list and attaches previews and enrichment
func (s *Service) ListArticles(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article
	if err := s.fetchJSON(ctx, s.cfg.ArticlesURL, &articles); err != nil {
		return nil, err
	}

	s.backfillThumbnails(ctx, articles)
	s.attachArticleColors(ctx, articles)

	for i := range articles {
		result := s.pipeline.Build(articles[i].Description)
		articles[i].Preview = &result
	}

	return articles, nil
}

// ListPlaces fetches the place list and attaches previews and enrichment
func (s *Service) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	var places []domain.Place
	if err := s.fetchJSON(ctx, s.cfg.PlacesURL, &places); err != nil {
		return nil, err
	}

	s.attachPlaceColors(ctx, places)

	for i := range places {
		result := s.pipeline.Build(places[i].Description)
		places[i].Preview = &result
	}

	return places, nil
}

// GetArticle returns a single article with its full sanitized description
func (s *Service) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "article id cannot be empty"}
	}

	var articles []domain.Article
	if err := s.fetchJSON(ctx, s.cfg.ArticlesURL, &articles); err != nil {
		return nil, err
	}

	for i := range articles {
		if articles[i].ID == id {
			article := articles[i]
			article.Preview = &domain.PreviewResult{
				ProcessedMarkup: s.pipeline.Detail(article.Description),
			}
			return &article, nil
		}
	}

	return nil, &coreerrors.NotFoundError{Resource: "article", ID: id}
}

// GetPlace returns a single place with its full sanitized description
func (s *Service) GetPlace(ctx context.Context, id string) (*domain.Place, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "place id cannot be empty"}
	}

	var places []domain.Place
	if err := s.fetchJSON(ctx, s.cfg.PlacesURL, &places); err != nil {
		return nil, err
	}

	for i := range places {
		if places[i].ID == id {
			place := places[i]
			place.Preview = &domain.PreviewResult{
				ProcessedMarkup: s.pipeline.Detail(place.Description),
			}
			return &place, nil
		}
	}

	return nil, &coreerrors.NotFoundError{Resource: "place", ID: id}
}

// fetchJSON retrieves and decodes a JSON endpoint, serving the raw body from
// the KV store when a fresh copy is cached
func (s *Service) fetchJSON(ctx context.Context, endpoint string, out interface{}) error {
	if endpoint == "" {
		return errors.New("content endpoint not configured")
	}

	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("invalid content endpoint URL")
	}

	if body := s.getCachedBody(ctx, endpoint); body != nil {
		if err := json.Unmarshal(body, out); err == nil {
			return nil
		}
		// Corrupt cache entry; fall through to a fresh fetch
	}

	if s.deps.HTTPClient == nil {
		return errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "content endpoint returned non-200 status",
			API:        endpoint,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode content response: %w", err)
	}

	s.cacheBody(ctx, endpoint, body)
	return nil
}

func (s *Service) getCachedBody(ctx context.Context, endpoint string) []byte {
	if s.deps.KV == nil {
		return nil
	}
	data, err := s.deps.KV.Get(ctx, "content:"+endpoint)
	if err != nil {
		return nil
	}
	return data
}

func (s *Service) cacheBody(ctx context.Context, endpoint string, body []byte) {
	if s.deps.KV == nil {
		return
	}
	if err := s.deps.KV.Set(ctx, "content:"+endpoint, body, contentCacheTTL); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Failed to cache content response", map[string]interface{}{
			"endpoint": endpoint,
			"error":    err.Error(),
		})
	}
}

// backfillThumbnails fills missing article thumbnails from page metadata
func (s *Service) backfillThumbnails(ctx context.Context, articles []domain.Article) {
	if s.metadata == nil {
		return
	}

	for i := range articles {
		if articles[i].Thumbnail != "" || articles[i].Link == "" {
			continue
		}
		meta, err := s.metadata.ExtractMetadata(ctx, articles[i].Link)
		if err != nil || meta == nil {
			continue
		}
		articles[i].Thumbnail = meta.Thumbnail
	}
}

// attachArticleColors fills card background colors for article thumbnails
func (s *Service) attachArticleColors(ctx context.Context, articles []domain.Article) {
	if s.colors == nil {
		return
	}

	urls := make([]string, 0, len(articles))
	for i := range articles {
		if articles[i].Thumbnail != "" {
			urls = append(urls, articles[i].Thumbnail)
		}
	}
	if len(urls) == 0 {
		return
	}

	colors := s.colors.ExtractColorBatch(ctx, urls)
	for i := range articles {
		if color, ok := colors[articles[i].Thumbnail]; ok {
			articles[i].ThumbnailColor = color
		}
	}
}

// attachPlaceColors fills card background colors for place thumbnails
func (s *Service) attachPlaceColors(ctx context.Context, places []domain.Place) {
	if s.colors == nil {
		return
	}

	urls := make([]string, 0, len(places))
	for i := range places {
		if places[i].Thumbnail != "" {
			urls = append(urls, places[i].Thumbnail)
		}
	}
	if len(urls) == 0 {
		return
	}

	colors := s.colors.ExtractColorBatch(ctx, urls)
	for i := range places {
		if color, ok := colors[places[i].Thumbnail]; ok {
			places[i].ThumbnailColor = color
		}
	}
}

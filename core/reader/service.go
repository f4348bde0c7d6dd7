// ABOUTME: Service layer implementation for reader view extraction
// ABOUTME: Handles article content extraction using go-readability

package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	readability "github.com/go-shiori/go-readability"

	"memoria-app-api/core/domain"
	"memoria-app-api/core/interfaces"
	"memoria-app-api/core/preview"
)

const readerCacheTTL = 1 * time.Hour

// extractTimeout bounds the fetch-and-parse of a single page
const extractTimeout = 30 * time.Second

// Service extracts clean article content from web pages
type Service struct {
	kv     interfaces.KeyValueStore
	logger interfaces.Logger

	// extract is swappable in tests
	extract func(url string, timeout time.Duration) (readability.Article, error)
}

// NewService creates a reader service instance
func NewService(kv interfaces.KeyValueStore, logger interfaces.Logger) *Service {
	return &Service{
		kv:      kv,
		logger:  logger,
		extract: readability.FromURL,
	}
}

// Extract extracts clean article content from a single URL
func (s *Service) Extract(ctx context.Context, url string) domain.ReaderView {
	views := s.ExtractReaderViews(ctx, []string{url})
	return views[0]
}

// ExtractReaderViews extracts clean article content from multiple URLs
// concurrently. Results keep the order of the input URLs; failures are
// reported per entry rather than failing the batch.
func (s *Service) ExtractReaderViews(ctx context.Context, urls []string) []domain.ReaderView {
	results := make([]domain.ReaderView, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(index int, url string) {
			defer wg.Done()

			if cached, ok := s.getCachedView(ctx, url); ok {
				results[index] = cached
				return
			}

			view := s.extractSingleView(url)
			results[index] = view

			if view.Status == "ok" {
				s.cacheView(ctx, url, view)
			}
		}(i, url)
	}

	wg.Wait()
	return results
}

func (s *Service) extractSingleView(url string) domain.ReaderView {
	result := domain.ReaderView{
		URL:    url,
		Status: "ok",
	}

	article, err := s.extract(url, extractTimeout)
	if err != nil {
		s.logger.Error("Failed to parse reader view", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		result.Status = "error"
		result.Error = err.Error()
		return result
	}

	result.Title = article.Title
	// Extracted markup is untrusted page content; sanitize before it
	// leaves the core
	result.Content = preview.Sanitize(article.Content)
	result.TextContent = article.TextContent
	result.SiteName = article.SiteName
	result.Image = article.Image
	result.Favicon = article.Favicon

	return result
}

func (s *Service) getCachedView(ctx context.Context, url string) (domain.ReaderView, bool) {
	if s.kv == nil {
		return domain.ReaderView{}, false
	}

	data, err := s.kv.Get(ctx, fmt.Sprintf("reader:%s", url))
	if err != nil || data == nil {
		return domain.ReaderView{}, false
	}

	var view domain.ReaderView
	if err := json.Unmarshal(data, &view); err != nil {
		return domain.ReaderView{}, false
	}
	return view, true
}

func (s *Service) cacheView(ctx context.Context, url string, view domain.ReaderView) {
	if s.kv == nil {
		return
	}
	if data, err := json.Marshal(view); err == nil {
		_ = s.kv.Set(ctx, fmt.Sprintf("reader:%s", url), data, readerCacheTTL)
	}
}

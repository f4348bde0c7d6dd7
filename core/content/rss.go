// ABOUTME: RSS adapter mapping syndicated feed items onto article records
// ABOUTME: Lets an RSS feed serve as an additional article source

package content

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"memoria-app-api/core/domain"
	coreerrors "memoria-app-api/core/errors"
)

// FetchFeed fetches an RSS or Atom feed and maps its items onto article
// records. Items keep their raw descriptions; callers run the preview
// pipeline the same way they do for JSON-sourced articles.
func (s *Service) FetchFeed(ctx context.Context, feedURL string) ([]domain.Article, error) {
	if feedURL == "" {
		return nil, errors.New("feed URL cannot be empty")
	}

	parsed, err := url.Parse(feedURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.New("invalid feed URL format")
	}

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-200 status",
			API:        feedURL,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	parser := gofeed.NewParser()
	feed, err := parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	articles := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		articles = append(articles, convertFeedItem(item))
	}

	return articles, nil
}

// convertFeedItem maps a single feed item onto an article record
func convertFeedItem(item *gofeed.Item) domain.Article {
	article := domain.Article{
		ID:          item.GUID,
		Title:       item.Title,
		Description: item.Description,
		Link:        item.Link,
		Published:   item.PublishedParsed,
	}

	if article.ID == "" {
		article.ID = item.Link
	}

	if item.Author != nil {
		article.Author = item.Author.Name
	}

	article.Thumbnail = findItemThumbnail(item)

	return article
}

// findItemThumbnail picks an image for the item, preferring image enclosures
func findItemThumbnail(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc.URL != "" && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}

	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	return ""
}

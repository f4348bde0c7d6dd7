// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for enrichment services used throughout the application

package interfaces

import (
	"context"

	"memoria-app-api/core/domain"
)

// ThumbnailColorService extracts prominent colors from images for card and
// gallery placeholder backgrounds
type ThumbnailColorService interface {
	ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
	ExtractColorBatch(ctx context.Context, imageURLs []string) map[string]*domain.RGBColor
}

// MetadataResult contains extracted metadata from a webpage
type MetadataResult struct {
	Title       string
	Description string
	Thumbnail   string // Primary image URL
	Favicon     string
	Domain      string
}

// MetadataService extracts metadata from web pages, used to backfill
// thumbnails for content items that arrive without one
type MetadataService interface {
	ExtractMetadata(ctx context.Context, url string) (*MetadataResult, error)
}

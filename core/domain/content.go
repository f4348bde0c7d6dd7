// ABOUTME: Content domain models for remotely fetched articles and places
// ABOUTME: Defines records whose descriptions feed the preview pipeline

package domain

import "time"

// PreviewResult is the output of the preview pipeline
type PreviewResult struct {
	// ProcessedMarkup is the sanitized, link-neutralized, possibly truncated markup.
	// Always safe to render as trusted HTML.
	ProcessedMarkup string `json:"processedMarkup"`

	// IsTruncated is true iff the plain-text word count of the sanitized,
	// link-neutralized input strictly exceeded the configured word limit
	IsTruncated bool `json:"isTruncated"`
}

// Article represents a remotely fetched article record
type Article struct {
	// ID is the unique identifier for the article
	ID string `json:"id"`

	// Title is the article's headline
	Title string `json:"title"`

	// Description contains the raw rich-text description (attacker-controlled)
	Description string `json:"article_description"`

	// Link is the URL to the full article
	Link string `json:"link"`

	// Thumbnail is the article image URL, possibly backfilled by enrichment
	Thumbnail string `json:"thumbnail,omitempty"`

	// Published is when the article was published
	Published *time.Time `json:"published,omitempty"`

	// Author is the creator of the article
	Author string `json:"author,omitempty"`

	// Preview is filled by the content service for list contexts
	Preview *PreviewResult `json:"preview,omitempty"`

	// ThumbnailColor is filled by enrichment for card backgrounds
	ThumbnailColor *RGBColor `json:"thumbnailColor,omitempty"`
}

// Place represents a remotely fetched place record
type Place struct {
	// ID is the unique identifier for the place
	ID string `json:"id"`

	// Name is the place name
	Name string `json:"name"`

	// Description contains the raw rich-text description (attacker-controlled)
	Description string `json:"place_description"`

	// Link is the URL with more information about the place
	Link string `json:"link,omitempty"`

	// Thumbnail is the place image URL
	Thumbnail string `json:"thumbnail,omitempty"`

	// Lat and Lon are the place coordinates
	Lat float64 `json:"lat,omitempty"`
	Lon float64 `json:"lon,omitempty"`

	// Preview is filled by the content service for list contexts
	Preview *PreviewResult `json:"preview,omitempty"`

	// ThumbnailColor is filled by enrichment for card backgrounds
	ThumbnailColor *RGBColor `json:"thumbnailColor,omitempty"`
}

// IsValid checks if the article has its required fields
func (a *Article) IsValid() bool {
	return a.Title != "" && a.ID != ""
}

// IsValid checks if the place has its required fields
func (p *Place) IsValid() bool {
	return p.Name != "" && p.ID != ""
}

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

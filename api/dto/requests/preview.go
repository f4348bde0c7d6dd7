// ABOUTME: Request DTOs for the preview processing endpoint
// ABOUTME: Provides defaults for the configurable word limit

package requests

import "errors"

var errEmptyURLs = errors.New("urls cannot be empty")

// PreviewRequest carries raw markup to run through the preview pipeline
type PreviewRequest struct {
	// Markup is the raw rich-text description to process
	Markup string `json:"markup"`

	// WordLimit bounds the preview's visible words; 0 means the default
	WordLimit int `json:"wordLimit,omitempty"`
}

// ReaderViewRequest represents a request to extract reader views from URLs
type ReaderViewRequest struct {
	// URLs to extract reader views from
	URLs []string `json:"urls"`
}

// Validate checks the request for required fields
func (r *ReaderViewRequest) Validate() error {
	if len(r.URLs) == 0 {
		return errEmptyURLs
	}
	return nil
}

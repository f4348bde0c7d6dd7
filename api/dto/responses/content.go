// ABOUTME: Response DTOs for content and reader API endpoints
// ABOUTME: Defines list envelopes around domain records

package responses

import "memoria-app-api/core/domain"

// ArticleListResponse is the envelope for article list endpoints
type ArticleListResponse struct {
	Articles []domain.Article `json:"articles"`
	Count    int              `json:"count"`
}

// PlaceListResponse is the envelope for place list endpoints
type PlaceListResponse struct {
	Places []domain.Place `json:"places"`
	Count  int            `json:"count"`
}

// ReaderViewResponse represents the response for reader view extraction
type ReaderViewResponse struct {
	Views []domain.ReaderView `json:"views"`
}

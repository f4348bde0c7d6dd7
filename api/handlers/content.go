// ABOUTME: HTTP handlers for article and place content endpoints
// ABOUTME: Exposes list, detail and RSS ingestion over the content service

package handlers

import (
	"context"
	"net/http"

	"memoria-app-api/api/dto/responses"
	"memoria-app-api/core/domain"
	coreerrors "memoria-app-api/core/errors"
)

// ContentService is the content contract the handler depends on
type ContentService interface {
	ListArticles(ctx context.Context) ([]domain.Article, error)
	ListPlaces(ctx context.Context) ([]domain.Place, error)
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	GetPlace(ctx context.Context, id string) (*domain.Place, error)
	FetchFeed(ctx context.Context, url string) ([]domain.Article, error)
}

// ContentHandler handles content requests
type ContentHandler struct {
	service ContentService
}

// NewContentHandler creates a content handler
func NewContentHandler(service ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// ListArticles handles GET /api/articles
func (h *ContentHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.ListArticles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.ArticleListResponse{
		Articles: articles,
		Count:    len(articles),
	})
}

// GetArticle handles GET /api/articles/{id}
func (h *ContentHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.service.GetArticle(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, article)
}

// ListPlaces handles GET /api/places
func (h *ContentHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.service.ListPlaces(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.PlaceListResponse{
		Places: places,
		Count:  len(places),
	})
}

// GetPlace handles GET /api/places/{id}
func (h *ContentHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	place, err := h.service.GetPlace(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, place)
}

// FetchFeed handles GET /api/feed?url=...
func (h *ContentHandler) FetchFeed(w http.ResponseWriter, r *http.Request) {
	feedURL := r.URL.Query().Get("url")
	if feedURL == "" {
		writeError(w, &coreerrors.ValidationError{Field: "url", Message: "url query parameter is required"})
		return
	}

	articles, err := h.service.FetchFeed(r.Context(), feedURL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.ArticleListResponse{
		Articles: articles,
		Count:    len(articles),
	})
}

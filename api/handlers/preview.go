// ABOUTME: HTTP handlers for the preview pipeline and reader view endpoints
// ABOUTME: Exposes the markup transform and article extraction directly

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"memoria-app-api/api/dto/requests"
	"memoria-app-api/api/dto/responses"
	"memoria-app-api/core/domain"
	coreerrors "memoria-app-api/core/errors"
	"memoria-app-api/core/preview"
)

// ReaderService is the reader extraction contract the handler depends on
type ReaderService interface {
	ExtractReaderViews(ctx context.Context, urls []string) []domain.ReaderView
}

// PreviewHandler handles preview and reader requests
type PreviewHandler struct {
	reader ReaderService
}

// NewPreviewHandler creates a preview handler
func NewPreviewHandler(reader ReaderService) *PreviewHandler {
	return &PreviewHandler{reader: reader}
}

// BuildPreview handles POST /api/preview
func (h *PreviewHandler) BuildPreview(w http.ResponseWriter, r *http.Request) {
	var req requests.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &coreerrors.ValidationError{Field: "body", Message: "invalid JSON body"})
		return
	}

	wordLimit := req.WordLimit
	if wordLimit <= 0 {
		wordLimit = preview.DefaultWordLimit
	}

	writeJSON(w, http.StatusOK, preview.BuildPreview(req.Markup, wordLimit))
}

// ReaderViews handles POST /api/reader
func (h *PreviewHandler) ReaderViews(w http.ResponseWriter, r *http.Request) {
	var req requests.ReaderViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &coreerrors.ValidationError{Field: "body", Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &coreerrors.ValidationError{Field: "urls", Message: err.Error()})
		return
	}

	views := h.reader.ExtractReaderViews(r.Context(), req.URLs)
	writeJSON(w, http.StatusOK, responses.ReaderViewResponse{Views: views})
}

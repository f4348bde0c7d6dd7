// ABOUTME: HTTP handlers for the photo library endpoints
// ABOUTME: Exposes load, capture, delete and share over the photo service

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"memoria-app-api/api/dto/mappers"
	"memoria-app-api/api/dto/requests"
	"memoria-app-api/core/domain"
	coreerrors "memoria-app-api/core/errors"
	"memoria-app-api/core/interfaces"
)

// PhotoService is the photo library contract the handler depends on
type PhotoService interface {
	LoadAll(ctx context.Context) ([]domain.UserPhoto, error)
	Capture(ctx context.Context, source interfaces.CaptureSource) (*domain.UserPhoto, error)
	Delete(ctx context.Context, filepath string) error
	Share(ctx context.Context, photo domain.UserPhoto) error
	ReadBytes(ctx context.Context, filepath string) ([]byte, error)
	Photos() []domain.UserPhoto
}

// requestCaptureSource adapts a capture request body to the CaptureSource
// contract; the client has already taken the photo
type requestCaptureSource struct {
	result interfaces.CaptureResult
}

func (s requestCaptureSource) GetPhoto(_ context.Context) (interfaces.CaptureResult, error) {
	return s.result, nil
}

// PhotoHandler handles photo library requests
type PhotoHandler struct {
	service PhotoService
}

// NewPhotoHandler creates a photo handler
func NewPhotoHandler(service PhotoService) *PhotoHandler {
	return &PhotoHandler{service: service}
}

// List handles GET /api/photos
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	photos, err := h.service.LoadAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToPhotoListResponse(photos))
}

// Capture handles POST /api/photos
func (h *PhotoHandler) Capture(w http.ResponseWriter, r *http.Request) {
	var req requests.CaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &coreerrors.ValidationError{Field: "body", Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &coreerrors.ValidationError{Field: "body", Message: err.Error()})
		return
	}

	source := requestCaptureSource{
		result: interfaces.CaptureResult{
			Path:    req.Path,
			WebPath: req.WebPath,
		},
	}

	photo, err := h.service.Capture(r.Context(), source)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, mappers.ToPhotoResponse(*photo))
}

// Delete handles DELETE /api/photos?filepath=...
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	filepath := r.URL.Query().Get("filepath")

	if err := h.service.Delete(r.Context(), filepath); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Raw handles GET /api/photos/{filename}/raw
func (h *PhotoHandler) Raw(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	var photo *domain.UserPhoto
	for _, p := range h.service.Photos() {
		if p.Filename() == filename {
			photo = &p
			break
		}
	}
	if photo == nil {
		writeError(w, &coreerrors.NotFoundError{Resource: "photo", ID: filename})
		return
	}

	data, err := h.service.ReadBytes(r.Context(), photo.Filepath)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(data)
}

// Share handles POST /api/photos/share
func (h *PhotoHandler) Share(w http.ResponseWriter, r *http.Request) {
	var req requests.SharePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &coreerrors.ValidationError{Field: "body", Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &coreerrors.ValidationError{Field: "filepath", Message: err.Error()})
		return
	}

	var photo *domain.UserPhoto
	for _, p := range h.service.Photos() {
		if p.Filepath == req.Filepath {
			photo = &p
			break
		}
	}
	if photo == nil {
		writeError(w, &coreerrors.NotFoundError{Resource: "photo", ID: req.Filepath})
		return
	}

	if err := h.service.Share(r.Context(), *photo); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ABOUTME: HTTP handler for retrieving persisted share records
// ABOUTME: Serves the link records minted by the share surface

package handlers

import (
	"net/http"

	coreerrors "memoria-app-api/core/errors"
	"memoria-app-api/infrastructure/share/link"
)

// ShareHandler handles share record lookups
type ShareHandler struct {
	surface *link.Surface
}

// NewShareHandler creates a share handler
func NewShareHandler(surface *link.Surface) *ShareHandler {
	return &ShareHandler{surface: surface}
}

// Get handles GET /api/shares/{id}
func (h *ShareHandler) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.surface.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, &coreerrors.NotFoundError{Resource: "share", ID: r.PathValue("id")})
		return
	}

	writeJSON(w, http.StatusOK, record)
}

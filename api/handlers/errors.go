// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	coreerrors "memoria-app-api/core/errors"
)

// errorBody is the JSON shape of every error response
type errorBody struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a domain error onto an HTTP status and writes it
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), errorBody{Error: err.Error()})
}

// statusForError picks the response status for a domain error
func statusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case coreerrors.IsNotFound(err):
		return http.StatusNotFound
	case coreerrors.IsValidation(err):
		return http.StatusBadRequest
	case coreerrors.IsExternalAPI(err):
		var apiErr *coreerrors.ExternalAPIError
		if !errors.As(err, &apiErr) {
			return http.StatusInternalServerError
		}
		switch {
		case apiErr.StatusCode >= 500:
			return http.StatusServiceUnavailable
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return http.StatusTooManyRequests
		case apiErr.StatusCode >= 400:
			return http.StatusBadGateway
		default:
			return http.StatusInternalServerError
		}
	case coreerrors.IsStorage(err):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

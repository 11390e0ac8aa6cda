package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sky-Wdh/Snuggle/internal/apperr"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// statusFromError maps the error taxonomy to fixed HTTP statuses:
// not-found kinds to 404, ownership and privacy to 403, invalid
// lifecycle transitions and bad input to 400, everything else 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotOwner),
		errors.Is(err, apperr.ErrPrivatePost):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrPostNotFound),
		errors.Is(err, apperr.ErrBlogNotFound),
		errors.Is(err, apperr.ErrProfileNotFound),
		errors.Is(err, apperr.ErrForumNotFound),
		errors.Is(err, apperr.ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrAlreadyDeleted),
		errors.Is(err, apperr.ErrNotDeleted),
		errors.Is(err, apperr.ErrMissingFields):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError sends the mapped status. Store failures stay
// generic; everything in the taxonomy carries its own short reason.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		WriteError(w, "Internal server error", status)
		return
	}
	WriteError(w, err.Error(), status)
}

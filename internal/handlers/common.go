package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mosorio19/Lomito/internal/repository"
	"github.com/mosorio19/Lomito/internal/services"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// respondServiceError maps known service and repository errors to HTTP
// statuses. Unknown errors become a generic 500 so internals never leak.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAge),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrEmptyPassword),
		errors.Is(err, services.ErrInvalidBreed),
		errors.Is(err, services.ErrInvalidSize):
		respondError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrDuplicateAccount):
		respondError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, services.ErrNotOwner):
		respondError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, "not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrPetUnavailable):
		respondError(w, err.Error(), http.StatusConflict)
	default:
		respondError(w, "internal error", http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"bookstore-backend/internal/repositories"
	"bookstore-backend/internal/services"
)

// writeError maps service and repository errors onto HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		http.Error(w, vErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, repositories.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, repositories.ErrInsufficientStock):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, repositories.ErrDuplicateInvoice):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, repositories.ErrConstraint):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

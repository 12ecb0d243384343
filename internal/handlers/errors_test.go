package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore-backend/internal/repositories"
	"bookstore-backend/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestWriteErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &services.ValidationError{Problems: []string{"quantity must be positive"}}, http.StatusUnprocessableEntity},
		{"not found", repositories.ErrNotFound, http.StatusNotFound},
		{"insufficient stock", fmt.Errorf("book 4: %w", repositories.ErrInsufficientStock), http.StatusConflict},
		{"duplicate invoice", repositories.ErrDuplicateInvoice, http.StatusConflict},
		{"constraint", repositories.ErrConstraint, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tc.err)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

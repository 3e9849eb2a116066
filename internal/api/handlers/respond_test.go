package handlers

import (
	"errors"
	"net/http"
	"testing"

	apperrors "sales-crm-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.ErrInvalidMonthFormat, http.StatusBadRequest},
		{"authentication", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"authorization", apperrors.ErrManagerOnly, http.StatusForbidden},
		{"out of scope", apperrors.ErrOutOfScope, http.StatusForbidden},
		{"not found", apperrors.ErrProspectNotFound, http.StatusNotFound},
		{"conflict", apperrors.ErrUserExists, http.StatusConflict},
		{"internal", apperrors.ErrMissingManagerLink, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

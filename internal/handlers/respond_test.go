package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Stephan2025u/FMS-NEW/internal/models"
	"github.com/Stephan2025u/FMS-NEW/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", models.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("client %q: %w", "x", models.ErrNotFound), http.StatusNotFound},
		{"invalid transition", models.ErrInvalidTransition, http.StatusConflict},
		{"incomplete assessment", models.ErrIncompleteAssessment, http.StatusUnprocessableEntity},
		{"invalid score", models.ErrInvalidScore, http.StatusBadRequest},
		{"no fields to update", repository.ErrNoFields, http.StatusBadRequest},
		{"transport failure", &models.TransportError{Op: "create client", Err: errors.New("connection refused")}, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, zap.NewNop(), tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), "detail")
		})
	}
}

// Transport failures never leak internals to the caller.
func TestRespondErrorHidesTransportDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondError(c, zap.NewNop(), &models.TransportError{Op: "get client", Err: errors.New("dial tcp: connection refused")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "dial tcp")
	assert.Contains(t, w.Body.String(), "internal error")
}

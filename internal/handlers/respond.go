package handlers

import (
	"errors"
	"net/http"

	"github.com/Stephan2025u/FMS-NEW/internal/models"
	"github.com/Stephan2025u/FMS-NEW/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates engine and store errors into HTTP responses.
// Validation errors are the caller's problem; transport failures are logged
// and surfaced as 500 so the caller can retry.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, models.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
	case errors.Is(err, models.ErrIncompleteAssessment):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
	case errors.Is(err, models.ErrInvalidScore), errors.Is(err, repository.ErrNoFields):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		var transportErr *models.TransportError
		if errors.As(err, &transportErr) {
			log.Error("Store operation failed", zap.String("op", transportErr.Op), zap.Error(transportErr.Err))
		} else {
			log.Error("Unexpected error", zap.Error(err))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}

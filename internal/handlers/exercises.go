package handlers

import (
	"net/http"

	"github.com/Stephan2025u/FMS-NEW/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ExercisesHandler struct {
	log     *zap.Logger
	catalog *models.Catalog
}

func NewExercisesHandler(log *zap.Logger, catalog *models.Catalog) *ExercisesHandler {
	return &ExercisesHandler{log: log, catalog: catalog}
}

// List returns all seven exercises with their scoring criteria, in screening
// order.
func (h *ExercisesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Exercises())
}

// Get returns a single exercise by id.
func (h *ExercisesHandler) Get(c *gin.Context) {
	exercise, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

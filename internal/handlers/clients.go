package handlers

import (
	"net/http"

	"github.com/Stephan2025u/FMS-NEW/internal/models"
	"github.com/Stephan2025u/FMS-NEW/internal/repository"
	"github.com/Stephan2025u/FMS-NEW/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ClientsHandler struct {
	log *zap.Logger
}

func NewClientsHandler(log *zap.Logger) *ClientsHandler {
	return &ClientsHandler{log: log}
}

type clientCreateRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
	Occupation  *string `json:"occupation"`
}

func (h *ClientsHandler) Create(c *gin.Context) {
	var req clientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	if !utils.IsValidName(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "name is required and must be at most 100 characters"})
		return
	}
	if !utils.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "a valid email is required"})
		return
	}

	client := &models.Client{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Occupation:  req.Occupation,
	}
	if err := repository.CreateClient(c.Request.Context(), client); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("Created client", zap.String("clientID", client.ID), zap.String("name", client.Name))
	c.JSON(http.StatusOK, client)
}

func (h *ClientsHandler) List(c *gin.Context) {
	clients, err := repository.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientsHandler) Get(c *gin.Context) {
	client, err := repository.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientsHandler) Update(c *gin.Context) {
	var update models.ClientUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	if update.Name != nil && !utils.IsValidName(*update.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "name must be at most 100 characters and not empty"})
		return
	}
	if update.Email != nil && !utils.IsValidEmail(*update.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "email is not valid"})
		return
	}

	client, err := repository.UpdateClient(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// Delete removes a client and all of their test results.
func (h *ClientsHandler) Delete(c *gin.Context) {
	if err := repository.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	h.log.Info("Deleted client", zap.String("clientID", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

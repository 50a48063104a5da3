package handlers

import (
	"net/http"

	"example.com/fleetdesk/internal/models"
	"example.com/fleetdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ClientHandler handles client record requests
type ClientHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewClientHandler creates a new ClientHandler instance
func NewClientHandler(svc service.Service, log *logrus.Logger) *ClientHandler {
	return &ClientHandler{
		service: svc,
		log:     log,
	}
}

// ListClients handles the client list view
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(c, c.Query("q"), c.Query("type"))
	if err != nil {
		h.log.WithError(err).Error("Failed to list clients")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to list clients",
		})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// CreateClient handles client creation
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client format",
		})
		return
	}
	if client.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "full_name is required",
		})
		return
	}
	if client.Type == "" {
		client.Type = models.ClientIndividual
	}

	created, err := h.service.CreateClient(c, client)
	if err != nil {
		h.log.WithError(err).Error("Failed to create client")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to create client",
		})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateClient handles client updates
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client ID",
		})
		return
	}

	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client format",
		})
		return
	}
	client.ID = id

	updated, err := h.service.UpdateClient(c, client)
	if err != nil {
		h.log.WithError(err).Error("Failed to update client")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to update client",
		})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClient handles client deletion after explicit confirmation
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid client ID",
		})
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Deletion requires confirm=true",
		})
		return
	}

	if err := h.service.DeleteClient(c, id); err != nil {
		h.log.WithError(err).Error("Failed to delete client")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to delete client",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "deleted",
		"id":     id,
	})
}

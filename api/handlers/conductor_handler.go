package handlers

import (
	"net/http"

	"example.com/fleetdesk/internal/models"
	"example.com/fleetdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ConductorHandler handles driver record requests
type ConductorHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewConductorHandler creates a new ConductorHandler instance
func NewConductorHandler(svc service.Service, log *logrus.Logger) *ConductorHandler {
	return &ConductorHandler{
		service: svc,
		log:     log,
	}
}

// ListConductores handles the driver list view
func (h *ConductorHandler) ListConductores(c *gin.Context) {
	conductores, err := h.service.ListConductores(c, c.Query("q"), c.Query("status"))
	if err != nil {
		h.log.WithError(err).Error("Failed to list conductores")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to list conductores",
		})
		return
	}
	c.JSON(http.StatusOK, conductores)
}

// CreateConductor handles driver creation. Document files arrive as base64
// strings inside the JSON body and are forwarded the same way.
func (h *ConductorHandler) CreateConductor(c *gin.Context) {
	var conductor models.Conductor
	if err := c.ShouldBindJSON(&conductor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid conductor format",
		})
		return
	}
	if conductor.FirstName == "" || conductor.LastName == "" || conductor.LicenseNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "first_name, last_name and license_number are required",
		})
		return
	}
	if conductor.Status == "" {
		conductor.Status = models.ConductorActive
	}

	created, err := h.service.CreateConductor(c, conductor)
	if err != nil {
		h.log.WithError(err).Error("Failed to create conductor")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to create conductor",
		})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateConductor handles driver updates
func (h *ConductorHandler) UpdateConductor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid conductor ID",
		})
		return
	}

	var conductor models.Conductor
	if err := c.ShouldBindJSON(&conductor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid conductor format",
		})
		return
	}
	conductor.ID = id

	updated, err := h.service.UpdateConductor(c, conductor)
	if err != nil {
		h.log.WithError(err).Error("Failed to update conductor")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to update conductor",
		})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteConductor handles driver deletion after explicit confirmation
func (h *ConductorHandler) DeleteConductor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid conductor ID",
		})
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Deletion requires confirm=true",
		})
		return
	}

	if err := h.service.DeleteConductor(c, id); err != nil {
		h.log.WithError(err).Error("Failed to delete conductor")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to delete conductor",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "deleted",
		"id":     id,
	})
}

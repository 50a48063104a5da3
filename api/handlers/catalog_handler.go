package handlers

import (
	"net/http"

	"example.com/fleetdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CatalogHandler handles lookup catalog requests
type CatalogHandler struct {
	service service.Service
	log     *logrus.Logger
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(svc service.Service, log *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		log:     log,
	}
}

// GetCatalog handles a lookup catalog fetch by category name
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Catalog category is required",
		})
		return
	}

	items, err := h.service.Catalog(c, category)
	if err != nil {
		h.log.WithError(err).WithField("category", category).Error("Failed to fetch catalog")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to fetch catalog",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}
